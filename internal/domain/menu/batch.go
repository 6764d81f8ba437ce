package menu

import (
	"sort"

	"canteen-coupon/internal/pkg/errs"
)

var (
	ErrNoValidItems     = errs.New("menu upload contains no valid items")
	ErrDuplicateSlot    = errs.New("slot appears again later in the upload")
	ErrMissingPriceCell = errs.New("price is required")
)

// Row is one untrusted (day, meal) cell pair from an upload.
type Row struct {
	Line        int
	Day         string
	MealType    string
	Description string
	Price       string
}

type Entry struct {
	Slot        Slot
	Description Description
	Price       Price
}

type RejectedRow struct {
	Row    Row
	Reason error
}

// Batch is the validated content of one publication. Building it never
// touches storage, so a rejected upload leaves the live menu alone.
type Batch struct {
	entries  []Entry
	rejected []RejectedRow
}

func NewBatch(rows []Row) (*Batch, error) {
	b := &Batch{}
	bySlot := make(map[Slot]int)
	sources := make([]Row, 0, len(rows))

	for _, row := range rows {
		entry, err := parseRow(row)
		if err != nil {
			b.rejected = append(b.rejected, RejectedRow{Row: row, Reason: err})
			continue
		}
		if idx, dup := bySlot[entry.Slot]; dup {
			b.rejected = append(b.rejected, RejectedRow{Row: sources[idx], Reason: ErrDuplicateSlot})
			b.entries[idx] = entry
			sources[idx] = row
			continue
		}
		bySlot[entry.Slot] = len(b.entries)
		b.entries = append(b.entries, entry)
		sources = append(sources, row)
	}

	if len(b.entries) == 0 {
		return nil, ErrNoValidItems
	}

	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Slot.Less(b.entries[j].Slot)
	})
	return b, nil
}

func (b *Batch) Entries() []Entry        { return b.entries }
func (b *Batch) Rejected() []RejectedRow { return b.rejected }
func (b *Batch) Len() int                { return len(b.entries) }

func parseRow(row Row) (Entry, error) {
	day, err := ParseDayOfWeek(row.Day)
	if err != nil {
		return Entry{}, err
	}
	meal, err := ParseMealType(row.MealType)
	if err != nil {
		return Entry{}, err
	}
	description, err := NewDescription(row.Description)
	if err != nil {
		return Entry{}, err
	}
	if row.Price == "" {
		return Entry{}, ErrMissingPriceCell
	}
	price, err := ParsePrice(row.Price)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Slot:        Slot{Day: day, Meal: meal},
		Description: description,
		Price:       price,
	}, nil
}

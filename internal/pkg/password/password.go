package password

import (
	"canteen-coupon/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errs.New("password must not be empty")
	ErrMismatch      = errs.New("password does not match")
	ErrMalformedHash = errs.New("stored password hash is malformed")
	ErrWeakHash      = errs.New("stored password hash cost is too low")
)

// MinConfiguredCost is the lowest bcrypt cost accepted for the admin hash
// outside tests.
const MinConfiguredCost = 10

func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func Compare(hashed, plain string) error {
	if plain == "" {
		return ErrEmptyPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrapf(ErrMalformedHash, "%v", err)
	}
}

// ValidateHash checks that a configured digest is a bcrypt hash of at least
// minCost.
func ValidateHash(hashed string, minCost int) error {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return errs.Wrapf(ErrMalformedHash, "%v", err)
	}
	if cost < minCost {
		return errs.Wrapf(ErrWeakHash, "cost %d below %d", cost, minCost)
	}
	return nil
}

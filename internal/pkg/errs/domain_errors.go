package errs

// Error categories surfaced by the usecase layer. Concrete errors are marked
// with one of these so the handler can map them without knowing every cause.
var (
	ErrValidation         = New("validation error")
	ErrNotBookable        = New("not bookable")
	ErrNotFound           = New("not found")
	ErrConflict           = New("conflict")
	ErrTransactionFailure = New("transaction failure")
	ErrConfiguration      = New("configuration error")
	ErrUnauthorized       = New("unauthorized")
)

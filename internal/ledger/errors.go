package ledger

import "fmt"

// ValidationError reports input rejected before any store call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// DuplicateAccountError reports a case-insensitive account name collision.
type DuplicateAccountError struct {
	Name string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Name)
}

// NotFoundError reports a missing lookup target. Deletes of absent targets
// are no-ops and never produce this; reads of a named account do.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

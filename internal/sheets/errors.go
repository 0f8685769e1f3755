package sheets

import "fmt"

// StoreUnavailableError covers every way the sheet backend can fail us:
// auth, quota, transport. Op says which operation was in flight.
type StoreUnavailableError struct {
	Op  string // "read" or "append"
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("sheet store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

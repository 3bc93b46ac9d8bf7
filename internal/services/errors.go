package services

import "fmt"

// StoreError reports a failed store operation. Callers may retry it; the
// service never does, since a retried insert could duplicate a message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

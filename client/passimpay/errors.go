package passimpay

import (
	"errors"
	"fmt"
)

// Hard errors abort a call. Gateway-reported problems are not errors; they
// arrive in the response's Message.
var (
	ErrConfiguration = errors.New("passimpay: configuration error")
	ErrTransport     = errors.New("passimpay: transport error")
	// ErrTimeout also matches ErrTransport.
	ErrTimeout = fmt.Errorf("%w: timeout", ErrTransport)
	ErrDecode  = errors.New("passimpay: decode error")
)

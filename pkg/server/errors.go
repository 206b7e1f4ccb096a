package server

import (
	"errors"
	"fmt"
)

// ErrServerClosed is returned by Serve and ListenAndServe after Shutdown
// or Close.
var ErrServerClosed = errors.New("server: closed")

// ErrorKind says which step of the connection lifecycle failed.
type ErrorKind int

const (
	BindFailure ErrorKind = iota
	AcceptFailure
	ReadFailure
	DecodeFailure
	WriteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case BindFailure:
		return "bind failed"
	case AcceptFailure:
		return "accept failed"
	case ReadFailure:
		return "read failed"
	case DecodeFailure:
		return "decode failed"
	case WriteFailure:
		return "write failed"
	default:
		return fmt.Sprintf("unknown failure %d", int(k))
	}
}

// Error is a failure on the listener or on a single connection. Only
// BindFailure is ever returned to callers; the rest are logged.
type Error struct {
	Kind   ErrorKind
	Remote string
	Err    error
}

func (e *Error) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("server: %s (%s): %v", e.Kind, e.Remote, e.Err)
	}
	return fmt.Sprintf("server: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

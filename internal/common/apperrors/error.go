// Package apperrors provides the application error type used across the
// inventory service. It extends the standard error interface with error
// chaining and HTTP status codes so that a failure raised deep in the domain
// layer carries everything the HTTP boundary needs to render it.
package apperrors

// Error is the interface implemented by all application errors. Methods that
// produce a modified error return a new value; errors are immutable once
// created so sentinel errors can be shared freely.
type Error interface {
	error
	Unwrap() error // supports errors.Is / errors.As

	New(msg string) Error                  // fresh error using the current one as template
	Msg(msg string) Error                  // new error with message, wrapping the original
	MsgErr(msg string, err ...error) Error // new error with message, wrapping extra errors
	Err(err ...error) Error                // attaches additional causes
	SetStatusCode(int) Error               // sets the HTTP status code
	StatusCode() int                       // returns the HTTP status code
	SetExpandError(bool) Error             // controls whether ErrorAll expands causes
	ErrorAll() string                      // message including wrapped causes
	UnwrapAll() []error                    // all wrapped causes
}

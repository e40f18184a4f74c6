package xerrors

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnknownActivity = errors.New("unknown activity code")
	ErrArity           = errors.New("wrong number of fields")
	ErrInvalidSample   = errors.New("invalid sample")
)

type Error struct {
	Kind    error
	Message string
	Cause   error
	Fields  map[string]string
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg += " (" + e.fieldList() + ")"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports a match against the error's kind so callers can use errors.Is
// with the package sentinels.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

func (e *Error) fieldList() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func UnknownActivity(opts ...Option) *Error { return newErr(ErrUnknownActivity, opts) }
func Arity(opts ...Option) *Error           { return newErr(ErrArity, opts) }

func Validation(fields map[string]string, opts ...Option) *Error {
	e := newErr(ErrInvalidSample, opts)
	e.Fields = fields
	return e
}

func newErr(kind error, opts []Option) *Error {
	e := &Error{Kind: kind, Message: kind.Error()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func WithFields(fields map[string]string) Option {
	return func(e *Error) { e.Fields = fields }
}

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

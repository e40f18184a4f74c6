package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "unknown activity matches its kind",
			err:    UnknownActivity(),
			target: ErrUnknownActivity,
			want:   true,
		},
		{
			name:   "wrapped unknown activity still matches",
			err:    fmt.Errorf("reading package: %w", UnknownActivity(WithMessage(`unknown activity code "FLY"`))),
			target: ErrUnknownActivity,
			want:   true,
		},
		{
			name:   "arity does not match unknown activity",
			err:    Arity(),
			target: ErrUnknownActivity,
			want:   false,
		},
		{
			name:   "validation matches invalid sample",
			err:    Validation(map[string]string{"duration": "must be positive"}),
			target: ErrInvalidSample,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "default message",
			err:  UnknownActivity(),
			want: "unknown activity code",
		},
		{
			name: "custom message with cause",
			err:  Arity(WithMessage("RUN expects 3 fields, got 2"), WithCause(cause)),
			want: "RUN expects 3 fields, got 2: boom",
		},
		{
			name: "fields are sorted",
			err: Validation(map[string]string{
				"weight":   "must be positive",
				"duration": "must be positive",
			}),
			want: "invalid sample (duration: must be positive; weight: must be positive)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", Arity())
	e := As(wrapped)
	require.NotNil(t, e)
	assert.ErrorIs(t, e, ErrArity)

	assert.Nil(t, As(errors.New("plain")))
}

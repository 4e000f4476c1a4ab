package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextError_Error(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		cause    error
		expected string
	}{
		{
			name:     "simple error",
			context:  "reading node payload",
			cause:    errors.New("invalid type"),
			expected: "reading node payload: invalid type",
		},
		{
			name:     "different context",
			context:  "decoding array",
			cause:    errors.New("count mismatch"),
			expected: "decoding array: count mismatch",
		},
		{
			name:     "empty context",
			context:  "",
			cause:    errors.New("some error"),
			expected: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ContextError{
				Context: tt.context,
				Cause:   tt.cause,
			}
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		context string
		cause   error
		wantNil bool
	}{
		{
			name:    "wrap non-nil error",
			context: "decoding node",
			cause:   errors.New("truncated buffer"),
			wantNil: false,
		},
		{
			name:    "wrap nil error returns nil",
			context: "some operation",
			cause:   nil,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.context, tt.cause)

			if tt.wantNil {
				require.Nil(t, err)
				return
			}

			require.NotNil(t, err)

			var ctxErr *ContextError
			ok := errors.As(err, &ctxErr)
			require.True(t, ok, "error should be *ContextError")
			require.Equal(t, tt.context, ctxErr.Context)
			require.Equal(t, tt.cause, ctxErr.Cause)
		})
	}
}

func TestContextError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	wrapped := Wrap("context", originalErr)

	require.NotNil(t, wrapped)
	require.Equal(t, originalErr, errors.Unwrap(wrapped))
}

func TestContextError_ErrorsIs(t *testing.T) {
	originalErr := errors.New("specific error")
	wrapped := Wrap("first level", originalErr)
	doubleWrapped := Wrap("second level", wrapped)

	require.True(t, errors.Is(doubleWrapped, originalErr))
	require.True(t, errors.Is(wrapped, originalErr))
}

func TestWrap_ChainedWrapping(t *testing.T) {
	baseErr := errors.New("base error")
	level1 := Wrap("level 1", baseErr)
	level2 := Wrap("level 2", level1)
	level3 := Wrap("level 3", level2)

	require.NotNil(t, level3)

	errMsg := level3.Error()
	require.Contains(t, errMsg, "level 3")
	require.Contains(t, errMsg, "level 2")

	require.True(t, errors.Is(level3, baseErr))

	var ctxErr *ContextError
	require.True(t, errors.As(level3, &ctxErr))
	require.Equal(t, "level 3", ctxErr.Context)

	unwrapped1 := errors.Unwrap(level3)
	require.True(t, errors.As(unwrapped1, &ctxErr))
	require.Equal(t, "level 2", ctxErr.Context)

	unwrapped2 := errors.Unwrap(unwrapped1)
	require.True(t, errors.As(unwrapped2, &ctxErr))
	require.Equal(t, "level 1", ctxErr.Context)

	require.Equal(t, baseErr, errors.Unwrap(unwrapped2))
}

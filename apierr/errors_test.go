package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationError(t *testing.T) {
	err := ApplicationError("invalid credentials", 200)

	assert.Equal(t, KindApplication, err.Kind)
	assert.Equal(t, "invalid credentials", err.Message)
	assert.Equal(t, 200, err.HTTPStatus)
	assert.Nil(t, err.Cause)
	assert.Contains(t, err.Error(), "application")
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestTimeoutError(t *testing.T) {
	cause := fmt.Errorf("context deadline exceeded")
	err := TimeoutError(cause)

	assert.Equal(t, KindTimeout, err.Kind)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "timed out")
}

func TestUnauthorizedErrorDefaultMessage(t *testing.T) {
	err := UnauthorizedError("")

	assert.Equal(t, KindUnauthorized, err.Kind)
	assert.Equal(t, "unauthorized", err.Message)
	assert.Equal(t, 401, err.HTTPStatus)
}

func TestNetworkErrorWithoutCause(t *testing.T) {
	err := NetworkError("request failed with status 502 Bad Gateway", 502, nil)

	assert.Equal(t, KindNetwork, err.Kind)
	assert.Equal(t, 502, err.HTTPStatus)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestAs(t *testing.T) {
	inner := MalformedError("no username returned", 200)
	wrapped := fmt.Errorf("get username: %w", inner)

	e, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindMalformed, e.Kind)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, KindMalformed, KindOf(wrapped))
}

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"already exists", ApplicationError("menu item already exists", 200), true},
		{"duplicate", ApplicationError("Duplicate entry for Veggie Bowl", 200), true},
		{"mixed case", ApplicationError("Item Already EXISTS", 200), true},
		{"other application error", ApplicationError("invalid price", 200), false},
		{"network error mentioning exists", NetworkError("host does not exist", 0, nil), false},
		{"plain error", errors.New("already exists"), false},
		{"wrapped duplicate", fmt.Errorf("add menu item: %w", ApplicationError("menu item already exists", 200)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicate(tt.err))
		})
	}
}

package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_FallsBackToGet(t *testing.T) {
	_, a := newUserAccessor(t)

	tests := []struct {
		method string
		want   any
	}{
		{"GetID", int64(1)},
		{"getName", "Ann"},
		{"GetName", "Ann"},
		{"getEmail", "ann@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := a.Call(tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCall_DeclaredMethodIsInvokedDirectly(t *testing.T) {
	u, a := newUserAccessor(t)

	got, err := a.Call("GetDisplayName")
	require.NoError(t, err)
	assert.Equal(t, "Ann <Ann@Example.COM>", got)

	got, err = a.Call("Reset")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, user{}, *u)
}

func TestCall_DeclaredMethodError(t *testing.T) {
	_, a := newUserAccessor(t)

	_, err := a.Call("SetStatus", "")
	assert.ErrorIs(t, err, errEmptyStatus)

	_, err = a.Call("SetStatus")
	require.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "SetStatus")

	_, err = a.Call("SetStatus", 12)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCall_SetReturnsRecord(t *testing.T) {
	u, a := newUserAccessor(t)

	got, err := a.Call("setTags", []string{"t"})
	require.NoError(t, err)
	assert.Same(t, u, got)
	assert.Equal(t, []string{"t"}, u.Tags)

	got, err = a.Call("SetID", 5)
	require.NoError(t, err)
	assert.Same(t, u, got)
	assert.Equal(t, int64(5), u.ID)
}

func TestCall_UndeclaredPropertyFails(t *testing.T) {
	_, a := newUserAccessor(t)

	_, err := a.Call("getFoo")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "foo")

	_, err = a.Call("setFoo", 1)
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = a.Call("getPassword")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestCall_UnknownOperation(t *testing.T) {
	_, a := newUserAccessor(t)

	for _, call := range []struct {
		method string
		args   []any
	}{
		{"frobnicate", nil},
		{"Get", nil},
		{"set", []any{1}},
		{"getName", []any{1}},
		{"setName", nil},
		{"setName", []any{1, 2}},
	} {
		t.Run(call.method, func(t *testing.T) {
			_, err := a.Call(call.method, call.args...)
			require.ErrorIs(t, err, ErrUnknownOperation)
			assert.Contains(t, err.Error(), call.method)
			assert.Contains(t, err.Error(), "property.user")
		})
	}
}

package property

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status string

var errEmptyStatus = errors.New("empty status")

type user struct {
	ID       int64
	Name     string
	Email    string
	Status   status
	Tags     []string
	Password string `prop:"_password"`
	note     string
}

func (u *user) GetEmail() string { return strings.ToLower(u.Email) }

func (u *user) SetName(v string) { u.Name = strings.TrimSpace(v) }

func (u *user) GetDisplayName() string { return u.Name + " <" + u.Email + ">" }

func (u *user) SetStatus(v string) error {
	if v == "" {
		return errEmptyStatus
	}

	u.Status = status(v)

	return nil
}

func (u *user) Reset() { *u = user{} }

func newUserAccessor(t *testing.T, opts ...Option) (*user, *Accessor) {
	t.Helper()

	u := &user{ID: 1, Name: "Ann", Email: "Ann@Example.COM", note: "internal"}

	a, err := New(u, opts...)
	require.NoError(t, err)

	return u, a
}

func TestNew_RejectsNonStructPointers(t *testing.T) {
	var nilUser *user

	tests := []struct {
		name   string
		record any
	}{
		{"nil", nil},
		{"struct value", user{}},
		{"nil pointer", nilUser},
		{"pointer to int", new(int)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.record)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrNotStructPtr)
		})
	}
}

func TestAccessor_SetThenGet(t *testing.T) {
	tests := []struct {
		field string
		value any
		want  any
	}{
		{"id", int64(42), int64(42)},
		{"id", 7, int64(7)},
		{"tags", []string{"a", "b"}, []string{"a", "b"}},
		{"tags", nil, []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, a := newUserAccessor(t)

			require.NoError(t, a.Set(tt.field, tt.value))

			got, err := a.Get(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessor_PrivateFields(t *testing.T) {
	for _, name := range []string{"_password", "_anything", "note"} {
		t.Run(name, func(t *testing.T) {
			_, a := newUserAccessor(t)

			_, err := a.Get(name)
			assert.ErrorIs(t, err, ErrInvalidField)

			assert.ErrorIs(t, a.Set(name, "x"), ErrInvalidField)
			assert.ErrorIs(t, a.Unset(name), ErrInvalidField)
			assert.False(t, a.Exists(name))

			err = a.Validate(name)
			require.ErrorIs(t, err, ErrInvalidField)
			assert.Contains(t, err.Error(), name)
			assert.Contains(t, err.Error(), "property.user")
			assert.Contains(t, err.Error(), ReasonPrivate)
		})
	}
}

func TestAccessor_UndeclaredField(t *testing.T) {
	_, a := newUserAccessor(t)

	_, err := a.Get("missing")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "missing")
	assert.Contains(t, err.Error(), "property.user")
	assert.Contains(t, err.Error(), ReasonUndeclared)

	assert.ErrorIs(t, a.Set("missing", 1), ErrInvalidField)
	assert.False(t, a.Exists("missing"))
}

func TestAccessor_ComputedGetterWins(t *testing.T) {
	u, a := newUserAccessor(t)

	got, err := a.Get("email")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got)
	assert.Equal(t, "Ann@Example.COM", u.Email, "literal field is untouched")
}

func TestAccessor_VirtualProperty(t *testing.T) {
	_, a := newUserAccessor(t)

	assert.True(t, a.Exists("displayName"))
	assert.ErrorIs(t, a.Validate("displayName"), ErrInvalidField)

	got, err := a.Get("displayName")
	require.NoError(t, err)
	assert.Equal(t, "Ann <Ann@Example.COM>", got)
}

func TestAccessor_ComputedSetter(t *testing.T) {
	u, a := newUserAccessor(t)

	require.NoError(t, a.Set("name", "  Bob  "))
	assert.Equal(t, "Bob", u.Name)

	require.NoError(t, a.Set("status", "active"))
	assert.Equal(t, status("active"), u.Status)

	assert.ErrorIs(t, a.Set("status", ""), errEmptyStatus)
	assert.ErrorIs(t, a.Set("status", 3), ErrInvalidValue)
}

func TestAccessor_InvalidValue(t *testing.T) {
	_, a := newUserAccessor(t)

	err := a.Set("id", "not a number")
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "int64")
}

type counters struct {
	Count uint8
	Ratio int
	Small int32
	limit uint8
}

func (c *counters) SetLimit(v uint8) { c.limit = v }

func TestAccessor_RejectsLossyNumbers(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{"negative to uint8", "count", -1},
		{"overflow uint8", "count", 300},
		{"fraction to int", "ratio", 2.9},
		{"overflow int32", "small", int64(1 << 40)},
		{"setter overflow uint8", "limit", 300},
		{"setter negative to uint8", "limit", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &counters{Count: 1, Ratio: 1, Small: 1, limit: 1}

			a, err := New(c)
			require.NoError(t, err)

			err = a.Set(tt.field, tt.value)
			require.ErrorIs(t, err, ErrInvalidValue)
			assert.Equal(t, &counters{Count: 1, Ratio: 1, Small: 1, limit: 1}, c)
		})
	}
}

func TestAccessor_Unset(t *testing.T) {
	u, a := newUserAccessor(t)

	require.NoError(t, a.Unset("id"))
	assert.Zero(t, u.ID)

	// Unset ignores computed methods.
	require.NoError(t, a.Unset("email"))
	assert.Empty(t, u.Email)
}

func TestAccessor_GetMany(t *testing.T) {
	_, a := newUserAccessor(t)

	values, err := a.GetMany("name", "id", "email", "name")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "id", "email"}, values.Keys())
	assert.Equal(t, 3, values.Len())

	for _, key := range values.Keys() {
		want, err := a.Get(key)
		require.NoError(t, err)

		got, ok := values.Get(key)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, err = a.GetMany("id", "_password")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestAccessor_SetMany(t *testing.T) {
	u, a := newUserAccessor(t)

	values := NewValues().
		Put("id", int64(9)).
		Put("name", " Zoe ").
		Put("tags", []string{"x"})

	require.NoError(t, a.SetMany(values))
	assert.Equal(t, int64(9), u.ID)
	assert.Equal(t, "Zoe", u.Name)
	assert.Equal(t, []string{"x"}, u.Tags)

	err := a.SetMany(NewValues().Put("id", int64(10)).Put("_password", "p").Put("name", "late"))
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Equal(t, int64(10), u.ID, "entries before the failure are written")
	assert.Equal(t, "Zoe", u.Name, "entries after the failure are not")
}

func TestAccessor_SetMap(t *testing.T) {
	u, a := newUserAccessor(t)

	require.NoError(t, a.SetMap(map[string]any{"id": 3, "email": "z@z"}))
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, "z@z", u.Email)
}

func TestAccessor_FieldNames(t *testing.T) {
	_, a := newUserAccessor(t)

	assert.ElementsMatch(t, []string{"id", "name", "email", "status", "tags"}, a.FieldNames())
}

func TestGetAs(t *testing.T) {
	_, a := newUserAccessor(t)

	id, err := GetAs[int64](a, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = GetAs[string](a, "id")
	assert.ErrorIs(t, err, ErrInvalidValue)

	tags, err := GetAs[[]string](a, "tags")
	require.NoError(t, err)
	assert.Nil(t, tags)
}

func TestAccessor_CustomPrefixAndTag(t *testing.T) {
	type token struct {
		Value  string `json:"value"`
		Secret string `json:"$secret"`
	}

	a, err := New(&token{Value: "v"}, WithTagName("json"), WithPrivatePrefix("$"))
	require.NoError(t, err)

	assert.Equal(t, []string{"value"}, a.FieldNames())
	assert.ErrorIs(t, a.Validate("$secret"), ErrInvalidField)
	assert.ErrorIs(t, a.Validate("$other"), ErrInvalidField)
	assert.NoError(t, a.Validate("value"))
}

func TestAccessor_LogsComputedDispatch(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, a := newUserAccessor(t, WithLogger(logger))

	_, err := a.Get("email")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "computed getter")
	assert.Contains(t, buf.String(), "method=GetEmail")
}

package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"pwd"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(signup{Username: "jdoe", Email: "jdoe@email.com", Password: "password"}))
}

func TestToDetails_UsesJSONNames(t *testing.T) {
	err := Struct(signup{Email: "nope", Password: "123"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.ElementsMatch(t, []FieldError{
		{Field: "username", Msg: "is required"},
		{Field: "email", Msg: "must be a valid email"},
		{Field: "password", Msg: "must be at least 6 characters and at most 72 bytes long"},
	}, details)
}

func TestToDetails_PasswordTooLong(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	err := Struct(signup{Username: "jdoe", Email: "jdoe@email.com", Password: string(long)})
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "password", Msg: "must be at least 6 characters and at most 72 bytes long"}}, ToDetails(err))
}

func TestStruct_PasswordLimitIsBytes(t *testing.T) {
	ok := signup{Username: "jdoe", Email: "jdoe@email.com", Password: strings.Repeat("é", 36)}
	assert.NoError(t, Struct(ok))

	tooLong := signup{Username: "jdoe", Email: "jdoe@email.com", Password: strings.Repeat("é", 40)}
	err := Struct(tooLong)
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "password", Msg: "must be at least 6 characters and at most 72 bytes long"}}, ToDetails(err))
}

func TestStruct_BlankUsername(t *testing.T) {
	err := Struct(signup{Username: "   ", Email: "jdoe@email.com", Password: "password"})
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "username", Msg: "is required"}}, ToDetails(err))
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var v signup
	err := json.Unmarshal([]byte(`{"username":`), &v)
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "payload", Msg: "invalid json"}}, ToDetails(err))

	err = json.Unmarshal([]byte(`{"username":12}`), &v)
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "payload", Msg: "invalid json"}}, ToDetails(err))
}

func TestToDetails_Fallback(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, []FieldError{{Field: "payload", Msg: "invalid payload"}}, ToDetails(errors.New("boom")))
}

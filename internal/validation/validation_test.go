package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" valid:"required~can't be blank"`
	Code string `json:"code" valid:"minstringlength(2)~is too short"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid struct", func(t *testing.T) {
		assert.NoError(t, Struct(sample{Name: "x", Code: "ab"}))
	})

	t.Run("Errors are keyed by lower case field name", func(t *testing.T) {
		err := Struct(sample{Code: "a"})

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "can't be blank", verr.Fields["name"])
		assert.Equal(t, "is too short", verr.Fields["code"])
		assert.Equal(t, "validation failed: code is too short; name can't be blank", err.Error())
	})
}

func TestPresence(t *testing.T) {
	assert.Equal(t, "", Presence("   \t"))
	assert.Equal(t, " a ", Presence(" a "))
	assert.True(t, Blank(""))
	assert.False(t, Blank("a"))
}

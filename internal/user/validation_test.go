package user

import (
	"testing"

	"github.com/VitaminP8/bloccit/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("alice", "alice@example.com", "secret123"))

	tests := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{"Missing username", "", "alice@example.com", "secret123", "username"},
		{"Short username", "al", "alice@example.com", "secret123", "username"},
		{"Invalid email", "alice", "not-an-email", "secret123", "email"},
		{"Missing email", "alice", " ", "secret123", "email"},
		{"Short password", "alice", "alice@example.com", "123", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.username, tt.email, tt.password)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateProfile(t *testing.T) {
	assert.NoError(t, ValidateProfile("", ""))
	assert.NoError(t, ValidateProfile("bob", "bob@example.com"))

	tests := []struct {
		name     string
		username string
		email    string
		field    string
	}{
		{"Invalid email", "", "bob", "email"},
		{"Short username", "al", "", "username"},
		{"Username padded with spaces", "  al  ", "", "username"},
		{"Blank username", "   ", "", "username"},
		{"Blank username and invalid email", "   ", "bob", "username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *validation.Error
			require.ErrorAs(t, ValidateProfile(tt.username, tt.email), &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

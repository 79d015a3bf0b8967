package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"plain latin", "John", "Smith", "j.smith"},
		{"diacritics stripped", "José", "Martínez", "j.martinez"},
		{"spaces and punctuation dropped", "Mary Jane", "O'Brien", "m.obrien"},
		{"empty first name", "", "Smith", "smith"},
		{"empty last name", "John", "", "john"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateUsername(tt.firstName, tt.lastName))
		})
	}
}

func TestGenerateUsernameFallback(t *testing.T) {
	// Имя целиком не латиницей - после нормализации ничего не остается.
	username := GenerateUsername("Иван", "Петров")

	require.True(t, strings.HasPrefix(username, "user."), "got %q", username)
	assert.Len(t, username, len("user.")+8)
}

func TestNewTempPassword(t *testing.T) {
	password := NewTempPassword()

	require.Len(t, password, 12)
	assert.NotContains(t, password, "-")
	assert.NotEqual(t, password, NewTempPassword(), "two passwords should not collide")
}

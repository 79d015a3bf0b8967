package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRosterImportAcceptsValidPayload(t *testing.T) {
	payload := []byte(`{
		"file_name": "roster.json",
		"team_id": "3e2cf27e-41f5-4f2a-9d67-8a3f5b6c1d2e",
		"rows": [
			{"first_name": "John", "last_name": "Smith", "email": "john@example.com", "position": "forward"},
			{"first_name": "Jane", "last_name": "Doe", "email": "jane@example.com"}
		]
	}`)

	assert.NoError(t, ValidateRosterImport(payload))
}

func TestValidateRosterImportRejectsBrokenPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"file_name": `},
		{"missing rows", `{"file_name": "roster.json"}`},
		{"empty rows", `{"file_name": "roster.json", "rows": []}`},
		{"row without email", `{"file_name": "roster.json", "rows": [{"first_name": "John", "last_name": "Smith"}]}`},
		{"bad email format", `{"file_name": "roster.json", "rows": [{"first_name": "John", "last_name": "Smith", "email": "not-an-email"}]}`},
		{"bad team id", `{"file_name": "roster.json", "team_id": "123", "rows": [{"first_name": "John", "last_name": "Smith", "email": "john@example.com"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ValidateRosterImport([]byte(tt.payload)))
		})
	}
}

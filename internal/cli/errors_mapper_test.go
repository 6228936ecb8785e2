package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/internal/service"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/internal/validators"
	"github.com/MKhiriev/warehouse-keeper/migrations"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"nil", nil, ExitOK, ""},
		{"invalid input", fmt.Errorf("%w: %w", service.ErrInvalidInput, validators.ErrEmptySKU), ExitInvalidInput, app.MsgInvalidDataProvided + ": invalid input: sku is required"},
		{"invalid credentials", ErrInvalidCredentials, ExitInvalidCredentials, app.MsgInvalidLoginPassword},
		{"duplicate", fmt.Errorf("%w: %w", service.ErrDuplicateUser, store.ErrUserAlreadyExists), ExitDuplicateUser, ""},
		{"schema mismatch", fmt.Errorf("%w: database is at 1, expected 2", migrations.ErrSchemaVersionMismatch), ExitSchemaMismatch, ""},
		{"unknown schema version", migrations.ErrUnknownSchemaVersion, ExitInvalidInput, ""},
		{"storage timeout", fmt.Errorf("item upsert failed: %w", store.ErrStorageTimeout), ExitStorage, ""},
		{"unclassified", errors.New("boom"), ExitFailure, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCode(tt.err))
			if tt.message != "" || tt.err == nil {
				assert.Equal(t, tt.message, Message(tt.err))
			}
		})
	}
}

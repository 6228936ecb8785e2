package cli

import (
	"errors"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/internal/service"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/migrations"
)

// Process exit codes.
const (
	ExitOK = iota
	ExitFailure
	ExitInvalidInput
	ExitInvalidCredentials
	ExitDuplicateUser
	ExitSchemaMismatch
	ExitStorage
)

type errorOutcome struct {
	target  error
	code    int
	message string
}

// ordered: the first match wins
var errorOutcomes = []errorOutcome{
	{service.ErrInvalidInput, ExitInvalidInput, app.MsgInvalidDataProvided},
	{ErrInvalidCredentials, ExitInvalidCredentials, app.MsgInvalidLoginPassword},
	{service.ErrDuplicateUser, ExitDuplicateUser, app.MsgLoginAlreadyExists},
	{migrations.ErrSchemaVersionMismatch, ExitSchemaMismatch, app.MsgSchemaVersionMismatch},
	{migrations.ErrUnknownSchemaVersion, ExitInvalidInput, app.MsgInvalidDataProvided},
	{store.ErrStorage, ExitStorage, app.MsgStorageUnavailable},
}

// ExitCode maps err to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	for _, o := range errorOutcomes {
		if errors.Is(err, o.target) {
			return o.code
		}
	}
	return ExitFailure
}

// Message renders err for the user. Known failures get a fixed wording
// followed by the details; anything else is printed as is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, o := range errorOutcomes {
		if errors.Is(err, o.target) {
			if err.Error() == o.message {
				return o.message
			}
			return o.message + ": " + err.Error()
		}
	}
	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// warehouse-keeper command-line driver.
//
// All Msg* constants are human-readable message strings that are written to
// the command output or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the CLI.
package app

const (
	// MsgInvalidDataProvided is printed when a command argument fails
	// validation (e.g. empty SKU, non-numeric quantity).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is printed when the supplied username/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgCredentialsValid is printed when validation succeeds.
	MsgCredentialsValid = "credentials are valid"

	// MsgLoginAlreadyExists is printed when a registration attempt is
	// rejected because the requested username is already in use.
	MsgLoginAlreadyExists = "username already exists"

	// MsgUserRegistered is printed after a successful registration.
	MsgUserRegistered = "user registered"

	// MsgStorageUnavailable is printed when the store failed or timed out.
	// The operation may be retried.
	MsgStorageUnavailable = "storage unavailable, please retry"

	// MsgInternalError is printed for failures the user cannot resolve.
	MsgInternalError = "internal error"

	// MsgItemSaved is printed after a successful upsert.
	MsgItemSaved = "item saved"

	// MsgItemDeleted is printed when a delete removed an item.
	MsgItemDeleted = "item deleted"

	// MsgItemNotFound is printed when a delete found nothing to remove.
	MsgItemNotFound = "item not found"

	// MsgNoItems is printed instead of an empty listing.
	MsgNoItems = "no items"

	// MsgSchemaMigrated is printed after a successful schema migration.
	MsgSchemaMigrated = "schema migrated"

	// MsgSchemaVersionMismatch is printed when --from does not match the
	// version the database is at.
	MsgSchemaVersionMismatch = "schema version mismatch"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the persisted credential record of an account.
// PasswordHash and Salt are always written and read together; the plaintext
// password never reaches this type.
type User struct {
	// Username is the unique account identifier and the primary key of the
	// "users" table.
	Username string `json:"username"`

	// PasswordHash is the encoded digest of (Salt, password).
	PasswordHash string `json:"-"`

	// Salt is the encoded per-user random value mixed into PasswordHash.
	Salt string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the command passed to registration and validation.
// Password is plaintext and must not be logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}

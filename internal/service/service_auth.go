package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/warehouse-keeper/internal/crypto"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/models"
)

// dummySalt stands in for the stored salt of an unknown user.
const dummySalt = "AAAAAAAAAAAAAAAAAAAAAA=="

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces salts and digests.
	hasher crypto.PasswordHasher

	// dummyDigest is verified against when the user does not exist so that
	// both failure paths cost one digest computation.
	dummyDigest string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		dummyDigest:    hasher.HashPassword("", dummySalt),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// A fresh salt is generated and the digest of (salt, password) is persisted
// with a single insert; the unique username column decides duplicates.
//
// Returns:
//   - ErrDuplicateUser if the username is taken.
//   - a wrapped salt or storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) error {
	log := logger.FromContext(ctx)

	salt, err := a.hasher.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("salt generation failed")
		return fmt.Errorf("user registration failed: %w", err)
	}

	user := models.User{
		Username:     creds.Username,
		PasswordHash: a.hasher.HashPassword(creds.Password, salt),
		Salt:         salt,
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("func", "*authService.RegisterUser").Str("username", creds.Username).Msg("username already registered")
			return fmt.Errorf("%w: %w", ErrDuplicateUser, err)
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Str("username", creds.Username).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.RegisterUser").Str("username", creds.Username).Msg("user registered")
	return nil
}

// ValidateUser checks creds against the stored digest.
//
// An unknown username is verified against a dummy digest and reported as
// false, exactly like a wrong password. Only storage failures return an
// error.
func (a *authService) ValidateUser(ctx context.Context, creds models.Credentials) (bool, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = a.hasher.Verify(creds.Password, dummySalt, a.dummyDigest)
			log.Debug().Str("func", "*authService.ValidateUser").Msg("credentials rejected")
			return false, nil
		}
		log.Err(err).Str("func", "*authService.ValidateUser").Msg("user search by username failed")
		return false, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.Salt, foundUser.PasswordHash) {
		log.Debug().Str("func", "*authService.ValidateUser").Msg("credentials rejected")
		return false, nil
	}

	return true, nil
}

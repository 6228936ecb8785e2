package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/mock"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testDummyDigest = "dummy-digest"

// newTestAuthSvc creates an authService backed by mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	hasher.EXPECT().HashPassword("", dummySalt).Return(testDummyDigest)

	return NewAuthService(repo, hasher, logger.Nop()), repo, hasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().GenerateSalt().Return("salt-1", nil),
		hasher.EXPECT().HashPassword("pw1", "salt-1").Return("digest-1"),
		repo.EXPECT().CreateUser(ctx, models.User{Username: "alice", PasswordHash: "digest-1", Salt: "salt-1"}).Return(nil),
	)

	require.NoError(t, svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw1"}))
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().GenerateSalt().Return("salt-2", nil)
	hasher.EXPECT().HashPassword("pw2", "salt-2").Return("digest-2")
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(store.ErrUserAlreadyExists)

	err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().GenerateSalt().Return("salt", nil)
	hasher.EXPECT().HashPassword(gomock.Any(), gomock.Any()).Return("digest")
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(store.ErrStorageTimeout)

	err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.NotErrorIs(t, err, ErrDuplicateUser)
}

func TestAuthService_RegisterUser_SaltFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	saltErr := errors.New("entropy exhausted")
	hasher.EXPECT().GenerateSalt().Return("", saltErr)

	err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "pw1"})
	assert.ErrorIs(t, err, saltErr)
}

// ── ValidateUser ─────────────────────────────────────────────────────────────

func TestAuthService_ValidateUser(t *testing.T) {
	stored := models.User{Username: "alice", PasswordHash: "digest-1", Salt: "salt-1"}

	tests := []struct {
		name     string
		password string
		verified bool
		want     bool
	}{
		{"correct password", "pw1", true, true},
		{"wrong password", "wrong", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			repo.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)
			hasher.EXPECT().Verify(tt.password, "salt-1", "digest-1").Return(tt.verified)

			ok, err := svc.ValidateUser(ctx, models.Credentials{Username: "alice", Password: tt.password})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAuthService_ValidateUser_UnknownUserRunsDummyVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "bob").Return(models.User{}, store.ErrUserNotFound)
	// even a dummy match must not authenticate
	hasher.EXPECT().Verify("x", dummySalt, testDummyDigest).Return(true).Times(1)

	ok, err := svc.ValidateUser(ctx, models.Credentials{Username: "bob", Password: "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_ValidateUser_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrStorage)

	ok, err := svc.ValidateUser(ctx, models.Credentials{Username: "alice", Password: "pw1"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, store.ErrStorage)
}

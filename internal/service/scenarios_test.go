package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/warehouse-keeper/internal/alert"
	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/crypto"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/mock"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type scenarioEnv struct {
	services   *Services
	dispatcher *alert.Dispatcher
	channel    *mock.MockNotificationChannel
}

// newScenarioEnv wires the real services over an SQLite file.
func newScenarioEnv(t *testing.T) scenarioEnv {
	t.Helper()
	ctx := context.Background()

	cfg := config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{
			DSN:              filepath.Join(t.TempDir(), "warehouse.db"),
			OperationTimeout: 5 * time.Second,
		}},
		Alerts: config.Alerts{
			Channel:     config.ChannelLog,
			Recipient:   "15551234567",
			SendTimeout: time.Second,
		},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	hasher, err := crypto.NewPasswordHasher(config.HashAlgorithmSHA256)
	require.NoError(t, err)

	channel := mock.NewMockNotificationChannel(gomock.NewController(t))
	dispatcher := alert.NewDispatcher(channel, cfg.Alerts, logger.Nop())

	return scenarioEnv{
		services:   NewServices(storages, hasher, dispatcher, cfg, logger.Nop()),
		dispatcher: dispatcher,
		channel:    channel,
	}
}

func TestScenario_RegisterTwice(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	require.NoError(t, env.services.AuthService.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw1"}))

	err := env.services.AuthService.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw2"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// the first password still works
	ok, err := env.services.AuthService.ValidateUser(ctx, models.Credentials{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScenario_ValidateUser(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()
	auth := env.services.AuthService

	require.NoError(t, auth.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw1"}))

	tests := []struct {
		creds models.Credentials
		want  bool
	}{
		{models.Credentials{Username: "alice", Password: "pw1"}, true},
		{models.Credentials{Username: "alice", Password: "wrong"}, false},
		{models.Credentials{Username: "bob", Password: "x"}, false},
	}

	for _, tt := range tests {
		ok, err := auth.ValidateUser(ctx, tt.creds)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%s/%s", tt.creds.Username, tt.creds.Password)
	}
}

func TestScenario_UpsertToZeroSendsOneAlert(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()
	inventory := env.services.InventoryService

	env.channel.EXPECT().
		SendAlert(gomock.Any(), "15551234567", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message string) error {
			assert.True(t, strings.Contains(message, "A1"))
			return nil
		}).
		Times(1)

	require.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "A1", Description: "Widget", Quantity: 5}))
	require.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "A1", Description: "Widget", Quantity: 0}))
	env.dispatcher.Wait()

	want := []models.InventoryItem{{SKU: "A1", Description: "Widget", Quantity: 0}}
	assert.Equal(t, want, inventory.ListItems(ctx))

	// the store agrees with the cache
	require.NoError(t, inventory.Refresh(ctx))
	assert.Equal(t, want, inventory.ListItems(ctx))
}

func TestScenario_FilterItems(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()
	inventory := env.services.InventoryService

	require.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "A1", Description: "Widget", Quantity: 3}))
	require.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "B2", Description: "Gadget", Quantity: 7}))
	require.NoError(t, inventory.Load(ctx))

	assert.Equal(t, []models.InventoryItem{{SKU: "A1", Description: "Widget", Quantity: 3}}, inventory.FilterItems(ctx, "wid"))
	assert.Empty(t, inventory.FilterItems(ctx, "zzz"))
	assert.Len(t, inventory.FilterItems(ctx, ""), 2)
}

func TestScenario_DeleteAndInvalidInput(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()
	inventory := env.services.InventoryService

	require.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "A1", Description: "Widget", Quantity: 3}))

	deleted, err := inventory.DeleteItem(ctx, models.DeleteItemRequest{SKU: "A1"})
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = inventory.DeleteItem(ctx, models.DeleteItemRequest{SKU: "A1"})
	require.NoError(t, err)
	assert.False(t, deleted)

	err = inventory.UpsertItem(ctx, models.UpsertItemRequest{SKU: "", Description: "nameless", Quantity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, inventory.ListItems(ctx))
}

func TestScenario_ConcurrentRegistrationAdmitsOne(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()

	const workers = 16
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- env.services.AuthService.RegisterUser(ctx, models.Credentials{
				Username: "alice",
				Password: fmt.Sprintf("pw%d", i),
			})
		}()
	}
	wg.Wait()
	close(errs)

	var ok, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrDuplicateUser):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, duplicates)
}

func TestScenario_ConcurrentUpsertsLeaveCacheEqualToStore(t *testing.T) {
	env := newScenarioEnv(t)
	ctx := context.Background()
	inventory := env.services.InventoryService

	const workers = 16

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, inventory.UpsertItem(ctx, models.UpsertItemRequest{
				SKU:         "A1",
				Description: "Widget",
				Quantity:    i + 1,
			}))
		}()
	}
	wg.Wait()

	cached := inventory.ListItems(ctx)
	require.Len(t, cached, 1)
	assert.Positive(t, cached[0].Quantity)

	require.NoError(t, inventory.Refresh(ctx))
	assert.Equal(t, cached, inventory.ListItems(ctx))
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/storage"
	"go-laundry-console/internal/store"
)

func TestSeedDefaults(t *testing.T) {
	st := store.New(storage.NewMemory())
	require.NoError(t, SeedDefaults(st, false))

	users, err := NewUserRepo(st).FindAll()
	require.NoError(t, err)
	require.Len(t, users, len(model.DefaultUsers))

	// Passwords land hashed, one account per role
	roles := map[model.Role]bool{}
	for i := range users {
		assert.True(t, len(users[i].Password) > 20)
		roles[users[i].Role] = true
	}
	assert.True(t, roles[model.RoleAdmin])
	assert.True(t, roles[model.RoleKasir])
	assert.True(t, roles[model.RoleOwner])

	outlets, err := NewOutletRepo(st).FindAll()
	require.NoError(t, err)
	assert.Len(t, outlets, len(model.DefaultOutlets))

	products, err := NewProductRepo(st).FindAll()
	require.NoError(t, err)
	assert.Len(t, products, len(model.DefaultProducts))

	customers, err := NewCustomerRepo(st).FindAll()
	require.NoError(t, err)
	assert.Len(t, customers, len(model.DefaultCustomers))

	// Transactions are derived-only and never seeded
	txs, err := NewTransactionRepo(st).FindAll()
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestSeedDefaultsLoginWorks(t *testing.T) {
	st := store.New(storage.NewMemory())
	require.NoError(t, SeedDefaults(st, false))

	admin, err := NewUserRepo(st).FindByUsername("admin")
	require.NoError(t, err)
	assert.True(t, admin.CheckPassword("admin123"))
}

func TestSeedDefaultsPreservesExistingData(t *testing.T) {
	st := store.New(storage.NewMemory())
	userRepo := NewUserRepo(st)

	custom := &model.User{Name: "Custom", Username: "custom", Role: model.RoleAdmin}
	require.NoError(t, custom.SetPassword("custom123"))
	require.NoError(t, userRepo.Create(custom))

	require.NoError(t, SeedDefaults(st, false))

	users, err := userRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "custom", users[0].Username)
}

func TestSeedDefaultsForceOverwrites(t *testing.T) {
	st := store.New(storage.NewMemory())
	userRepo := NewUserRepo(st)

	custom := &model.User{Name: "Custom", Username: "custom", Role: model.RoleAdmin}
	require.NoError(t, custom.SetPassword("custom123"))
	require.NoError(t, userRepo.Create(custom))

	require.NoError(t, SeedDefaults(st, true))

	users, err := userRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, len(model.DefaultUsers))
	_, err = userRepo.FindByUsername("custom")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

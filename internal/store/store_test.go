package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-laundry-console/internal/storage"
)

func newTestStore() *Store {
	return New(storage.NewMemory())
}

func TestGetAllUninitializedEntity(t *testing.T) {
	st := newTestStore()

	records, err := st.GetAll("ghosts")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	st := newTestStore()

	first, err := st.Create("outlets", Record{"name": "Central"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), RecordID(first))

	second, err := st.Create("outlets", Record{"name": "Express"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), RecordID(second))

	third, err := st.Create("outlets", Record{"name": "North"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), RecordID(third))
}

func TestCreateOverwritesCallerSuppliedID(t *testing.T) {
	st := newTestStore()

	_, err := st.Create("outlets", Record{"name": "Central"})
	require.NoError(t, err)

	// An edit path mis-calling create must not smuggle its own id in
	rec, err := st.Create("outlets", Record{"id": 99, "name": "Express"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), RecordID(rec))
}

func TestCreateIDStrictlyAboveSurvivors(t *testing.T) {
	st := newTestStore()

	for _, name := range []string{"a", "b", "c"} {
		_, err := st.Create("outlets", Record{"name": name})
		require.NoError(t, err)
	}
	require.NoError(t, st.Remove("outlets", 2))

	rec, err := st.Create("outlets", Record{"name": "d"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), RecordID(rec))
}

func TestUpdateShallowMerge(t *testing.T) {
	st := newTestStore()

	_, err := st.Create("customers", Record{"name": "John", "address": "Jl. Merdeka", "phone": "0812"})
	require.NoError(t, err)
	other, err := st.Create("customers", Record{"name": "Jane", "address": "Jl. Pahlawan", "phone": "0898"})
	require.NoError(t, err)

	updated, err := st.Update("customers", 1, Record{"address": "Jl. Baru"})
	require.NoError(t, err)

	// Patch fields win, unspecified fields keep their prior values
	assert.Equal(t, "Jl. Baru", updated["address"])
	assert.Equal(t, "John", updated["name"])
	assert.Equal(t, "0812", updated["phone"])

	// Other records pass through unchanged
	got, err := st.GetByID("customers", RecordID(other))
	require.NoError(t, err)
	assert.Equal(t, "Jl. Pahlawan", got["address"])
}

func TestUpdateUnknownID(t *testing.T) {
	st := newTestStore()

	_, err := st.Create("customers", Record{"name": "John"})
	require.NoError(t, err)

	_, err = st.Update("customers", 42, Record{"name": "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	st := newTestStore()

	for _, name := range []string{"a", "b", "c"} {
		_, err := st.Create("products", Record{"name": name})
		require.NoError(t, err)
	}

	require.NoError(t, st.Remove("products", 2))
	afterFirst, err := st.GetAll("products")
	require.NoError(t, err)

	require.NoError(t, st.Remove("products", 2))
	afterSecond, err := st.GetAll("products")
	require.NoError(t, err)

	assert.Equal(t, afterFirst, afterSecond)
	assert.Len(t, afterSecond, 2)

	// Removing an id that never existed also succeeds
	require.NoError(t, st.Remove("products", 99))
}

func TestInsertionOrderSurvivesMutations(t *testing.T) {
	st := newTestStore()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := st.Create("items", Record{"name": name})
		require.NoError(t, err)
	}
	require.NoError(t, st.Remove("items", 2))
	_, err := st.Update("items", 3, Record{"name": "c2"})
	require.NoError(t, err)

	records, err := st.GetAll("items")
	require.NoError(t, err)
	require.Len(t, records, 3)

	names := []string{}
	for _, rec := range records {
		names = append(names, rec["name"].(string))
	}
	assert.Equal(t, []string{"a", "c2", "d"}, names)
}

func TestGetByCode(t *testing.T) {
	st := newTestStore()

	_, err := st.Create("laundryItems", Record{"code": "LD-001-2026", "customerName": "John"})
	require.NoError(t, err)

	rec, err := st.GetByCode("laundryItems", "LD-001-2026")
	require.NoError(t, err)
	assert.Equal(t, "John", rec["customerName"])

	_, err = st.GetByCode("laundryItems", "LD-999-2026")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedOnlyWhenAbsent(t *testing.T) {
	st := newTestStore()

	seeded, err := st.Seed("users", []Record{{"id": 1, "name": "Admin"}})
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = st.Seed("users", []Record{{"id": 9, "name": "Other"}})
	require.NoError(t, err)
	assert.False(t, seeded)

	records, err := st.GetAll("users")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Admin", records[0]["name"])
}

func TestSeedSkipsEmptyButInitializedCollection(t *testing.T) {
	st := newTestStore()

	// A collection that was written and fully emptied is still initialized
	_, err := st.Create("users", Record{"name": "Admin"})
	require.NoError(t, err)
	require.NoError(t, st.Remove("users", 1))

	seeded, err := st.Seed("users", []Record{{"id": 1, "name": "Reborn"}})
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st := newTestStore()

	type outlet struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	rec, err := Encode(&outlet{Name: "Central"})
	require.NoError(t, err)
	created, err := st.Create("outlets", rec)
	require.NoError(t, err)

	decoded, err := Decode[outlet](created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), decoded.ID)
	assert.Equal(t, "Central", decoded.Name)
}

package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

// SeedDefaults writes the default records for every collection that has
// never been initialized. Transactions are deliberately not seeded: they are
// derived-only. When force is set, existing collections are overwritten.
func SeedDefaults(st *store.Store, force bool) error {
	users := make([]store.Record, 0, len(model.DefaultUsers))
	for _, u := range model.DefaultUsers {
		plain := u.Password
		if err := u.SetPassword(plain); err != nil {
			return err
		}
		rec, err := store.Encode(&u)
		if err != nil {
			return err
		}
		users = append(users, rec)
	}
	if err := seedOne(st, model.EntityUsers, users, force); err != nil {
		return err
	}

	customers, err := encodeAll(model.DefaultCustomers)
	if err != nil {
		return err
	}
	if err := seedOne(st, model.EntityCustomers, customers, force); err != nil {
		return err
	}

	outlets, err := encodeAll(model.DefaultOutlets)
	if err != nil {
		return err
	}
	if err := seedOne(st, model.EntityOutlets, outlets, force); err != nil {
		return err
	}

	products, err := encodeAll(model.DefaultProducts)
	if err != nil {
		return err
	}
	return seedOne(st, model.EntityProducts, products, force)
}

func seedOne(st *store.Store, entity string, records []store.Record, force bool) error {
	if force {
		return st.Write(entity, records)
	}
	_, err := st.Seed(entity, records)
	return err
}

func encodeAll[T any](items []T) ([]store.Record, error) {
	records := make([]store.Record, 0, len(items))
	for i := range items {
		rec, err := store.Encode(&items[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

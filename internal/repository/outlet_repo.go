package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

type OutletRepository interface {
	FindAll() ([]model.Outlet, error)
	FindByID(id int64) (*model.Outlet, error)
	Create(outlet *model.Outlet) error
	Update(id int64, outlet *model.Outlet) error
	Delete(id int64) error
}

type outletRepo struct {
	store *store.Store
}

func NewOutletRepo(st *store.Store) OutletRepository {
	return &outletRepo{store: st}
}

func (r *outletRepo) FindAll() ([]model.Outlet, error) {
	records, err := r.store.GetAll(model.EntityOutlets)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.Outlet](records)
}

func (r *outletRepo) FindByID(id int64) (*model.Outlet, error) {
	rec, err := r.store.GetByID(model.EntityOutlets, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.Outlet](rec)
}

func (r *outletRepo) Create(outlet *model.Outlet) error {
	rec, err := store.Encode(outlet)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityOutlets, rec)
	if err != nil {
		return err
	}
	outlet.ID = store.RecordID(created)
	return nil
}

func (r *outletRepo) Update(id int64, outlet *model.Outlet) error {
	patch, err := store.Encode(outlet)
	if err != nil {
		return err
	}
	delete(patch, "id")
	_, err = r.store.Update(model.EntityOutlets, id, patch)
	return err
}

func (r *outletRepo) Delete(id int64) error {
	return r.store.Remove(model.EntityOutlets, id)
}

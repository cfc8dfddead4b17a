package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

type CustomerRepository interface {
	FindAll() ([]model.Customer, error)
	FindByID(id int64) (*model.Customer, error)
	Create(customer *model.Customer) error
	Update(id int64, customer *model.Customer) error
	Delete(id int64) error
}

type customerRepo struct {
	store *store.Store
}

func NewCustomerRepo(st *store.Store) CustomerRepository {
	return &customerRepo{store: st}
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	records, err := r.store.GetAll(model.EntityCustomers)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.Customer](records)
}

func (r *customerRepo) FindByID(id int64) (*model.Customer, error) {
	rec, err := r.store.GetByID(model.EntityCustomers, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.Customer](rec)
}

func (r *customerRepo) Create(customer *model.Customer) error {
	rec, err := store.Encode(customer)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityCustomers, rec)
	if err != nil {
		return err
	}
	customer.ID = store.RecordID(created)
	return nil
}

func (r *customerRepo) Update(id int64, customer *model.Customer) error {
	patch, err := store.Encode(customer)
	if err != nil {
		return err
	}
	delete(patch, "id")
	_, err = r.store.Update(model.EntityCustomers, id, patch)
	return err
}

func (r *customerRepo) Delete(id int64) error {
	return r.store.Remove(model.EntityCustomers, id)
}

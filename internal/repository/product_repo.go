package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindByID(id int64) (*model.Product, error)
	FindByOutlet(outletID int64) ([]model.Product, error)
	Create(product *model.Product) error
	Update(id int64, product *model.Product) error
	Delete(id int64) error
}

type productRepo struct {
	store *store.Store
}

func NewProductRepo(st *store.Store) ProductRepository {
	return &productRepo{store: st}
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	records, err := r.store.GetAll(model.EntityProducts)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.Product](records)
}

func (r *productRepo) FindByID(id int64) (*model.Product, error) {
	rec, err := r.store.GetByID(model.EntityProducts, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.Product](rec)
}

func (r *productRepo) FindByOutlet(outletID int64) ([]model.Product, error) {
	products, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	filtered := []model.Product{}
	for _, p := range products {
		if p.OutletID == outletID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *productRepo) Create(product *model.Product) error {
	rec, err := store.Encode(product)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityProducts, rec)
	if err != nil {
		return err
	}
	product.ID = store.RecordID(created)
	return nil
}

func (r *productRepo) Update(id int64, product *model.Product) error {
	patch, err := store.Encode(product)
	if err != nil {
		return err
	}
	delete(patch, "id")
	_, err = r.store.Update(model.EntityProducts, id, patch)
	return err
}

func (r *productRepo) Delete(id int64) error {
	return r.store.Remove(model.EntityProducts, id)
}

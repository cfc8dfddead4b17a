package repository

import (
	"strings"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

type LaundryRepository interface {
	FindAll() ([]model.LaundryItem, error)
	FindByID(id int64) (*model.LaundryItem, error)
	FindByCode(code string) (*model.LaundryItem, error)
	Create(item *model.LaundryItem) error
	Update(id int64, patch store.Record) (*model.LaundryItem, error)
	Delete(id int64) error
	CountCodesContaining(fragment string) (int, error)
}

type laundryRepo struct {
	store *store.Store
}

func NewLaundryRepo(st *store.Store) LaundryRepository {
	return &laundryRepo{store: st}
}

func (r *laundryRepo) FindAll() ([]model.LaundryItem, error) {
	records, err := r.store.GetAll(model.EntityLaundryItems)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.LaundryItem](records)
}

func (r *laundryRepo) FindByID(id int64) (*model.LaundryItem, error) {
	rec, err := r.store.GetByID(model.EntityLaundryItems, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.LaundryItem](rec)
}

func (r *laundryRepo) FindByCode(code string) (*model.LaundryItem, error) {
	rec, err := r.store.GetByCode(model.EntityLaundryItems, code)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.LaundryItem](rec)
}

func (r *laundryRepo) Create(item *model.LaundryItem) error {
	rec, err := store.Encode(item)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityLaundryItems, rec)
	if err != nil {
		return err
	}
	item.ID = store.RecordID(created)
	return nil
}

// Update applies a partial patch; callers decide which fields move. The
// service layer never includes id or code here, keeping codes immutable.
func (r *laundryRepo) Update(id int64, patch store.Record) (*model.LaundryItem, error) {
	rec, err := r.store.Update(model.EntityLaundryItems, id, patch)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.LaundryItem](rec)
}

func (r *laundryRepo) Delete(id int64) error {
	return r.store.Remove(model.EntityLaundryItems, id)
}

// CountCodesContaining counts items whose code contains the fragment; code
// generation uses it with the current year.
func (r *laundryRepo) CountCodesContaining(fragment string) (int, error) {
	items, err := r.FindAll()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		if strings.Contains(item.Code, fragment) {
			count++
		}
	}
	return count, nil
}

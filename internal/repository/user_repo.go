package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

type UserRepository interface {
	FindAll() ([]model.User, error)
	FindByID(id int64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	Update(id int64, user *model.User) error
	Delete(id int64) error
	UpdatePassword(id int64, hashedPassword string) error
	UpdateTokenVersion(id int64, version string) error
}

type userRepo struct {
	store *store.Store
}

func NewUserRepo(st *store.Store) UserRepository {
	return &userRepo{store: st}
}

func (r *userRepo) FindAll() ([]model.User, error) {
	records, err := r.store.GetAll(model.EntityUsers)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.User](records)
}

func (r *userRepo) FindByID(id int64) (*model.User, error) {
	rec, err := r.store.GetByID(model.EntityUsers, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.User](rec)
}

func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *userRepo) Create(user *model.User) error {
	rec, err := store.Encode(user)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityUsers, rec)
	if err != nil {
		return err
	}
	user.ID = store.RecordID(created)
	return nil
}

func (r *userRepo) Update(id int64, user *model.User) error {
	patch, err := store.Encode(user)
	if err != nil {
		return err
	}
	delete(patch, "id")
	_, err = r.store.Update(model.EntityUsers, id, patch)
	return err
}

func (r *userRepo) Delete(id int64) error {
	return r.store.Remove(model.EntityUsers, id)
}

func (r *userRepo) UpdatePassword(id int64, hashedPassword string) error {
	_, err := r.store.Update(model.EntityUsers, id, store.Record{"password": hashedPassword})
	return err
}

func (r *userRepo) UpdateTokenVersion(id int64, version string) error {
	_, err := r.store.Update(model.EntityUsers, id, store.Record{"tokenVersion": version})
	return err
}

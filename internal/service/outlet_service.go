package service

import (
	"errors"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/store"
	"go-laundry-console/pkg/validator"
)

var ErrOutletNotFound = errors.New("outlet not found")

type OutletService interface {
	GetAll() ([]model.Outlet, error)
	GetByID(id int64) (*model.Outlet, error)
	Create(req *model.Outlet) (*model.Outlet, error)
	Update(id int64, req *model.Outlet) (*model.Outlet, error)
	Delete(id int64) error
}

type outletService struct {
	outletRepo repository.OutletRepository
}

func NewOutletService(outletRepo repository.OutletRepository) OutletService {
	return &outletService{outletRepo: outletRepo}
}

func (s *outletService) GetAll() ([]model.Outlet, error) {
	return s.outletRepo.FindAll()
}

func (s *outletService) GetByID(id int64) (*model.Outlet, error) {
	outlet, err := s.outletRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOutletNotFound
	}
	return outlet, err
}

func (s *outletService) Create(req *model.Outlet) (*model.Outlet, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := s.outletRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *outletService) Update(id int64, req *model.Outlet) (*model.Outlet, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.outletRepo.Update(id, req); err != nil {
		return nil, err
	}
	return s.outletRepo.FindByID(id)
}

func (s *outletService) Delete(id int64) error {
	return s.outletRepo.Delete(id)
}

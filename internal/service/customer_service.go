package service

import (
	"errors"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/store"
	"go-laundry-console/pkg/validator"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	GetAll() ([]model.Customer, error)
	GetByID(id int64) (*model.Customer, error)
	Create(req *model.Customer) (*model.Customer, error)
	Update(id int64, req *model.Customer) (*model.Customer, error)
	Delete(id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetAll() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetByID(id int64) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return customer, err
}

func (s *customerService) Create(req *model.Customer) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := s.customerRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *customerService) Update(id int64, req *model.Customer) (*model.Customer, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(id, req); err != nil {
		return nil, err
	}
	return s.customerRepo.FindByID(id)
}

func (s *customerService) Delete(id int64) error {
	return s.customerRepo.Delete(id)
}

package service

import (
	"errors"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/store"
	"go-laundry-console/pkg/validator"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	GetAll() ([]model.Product, error)
	GetByOutlet(outletID int64) ([]model.Product, error)
	GetByID(id int64) (*model.Product, error)
	Create(req *model.Product) (*model.Product, error)
	Update(id int64, req *model.Product) (*model.Product, error)
	Delete(id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByOutlet(outletID int64) ([]model.Product, error) {
	return s.productRepo.FindByOutlet(outletID)
}

func (s *productService) GetByID(id int64) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *productService) Create(req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *productService) Update(id int64, req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.productRepo.Update(id, req); err != nil {
		return nil, err
	}
	return s.productRepo.FindByID(id)
}

func (s *productService) Delete(id int64) error {
	return s.productRepo.Delete(id)
}

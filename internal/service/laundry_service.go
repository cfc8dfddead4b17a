package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/store"
	"go-laundry-console/internal/ws"
	"go-laundry-console/pkg/validator"
)

var (
	ErrItemNotFound = errors.New("laundry item not found")
	// ErrPaymentLocked rejects any attempt to move paymentStatus away from
	// "sudah bayar" once it has been reached.
	ErrPaymentLocked = errors.New("payment status cannot be changed after payment")
)

type LaundryService interface {
	GetAll() ([]model.LaundryItem, error)
	GetByID(id int64) (*model.LaundryItem, error)
	Track(code string) (*TrackResult, error)
	Create(req *CreateLaundryRequest) (*model.LaundryItem, error)
	Update(id int64, req *UpdateLaundryRequest) (*model.LaundryItem, error)
	UpdateStatus(id int64, req *StatusUpdateRequest) (*model.LaundryItem, error)
	Delete(id int64) error
	GenerateCode() (string, error)
}

type CreateLaundryRequest struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	ServiceID     int64  `json:"serviceId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	OutletID      int64  `json:"outletId" validate:"required"`
	Notes         string `json:"notes"`
}

// UpdateLaundryRequest edits intake fields only. Codes are immutable and
// status changes go through UpdateStatus, where the guards live.
type UpdateLaundryRequest struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	ServiceID     int64  `json:"serviceId" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	OutletID      int64  `json:"outletId" validate:"required"`
	Notes         string `json:"notes"`
}

type StatusUpdateRequest struct {
	ProcessStatus model.ProcessStatus `json:"processStatus" validate:"required,process_status"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus" validate:"required,payment_status"`
}

// TrackResult is the public tracking view: the item plus resolved service
// details and the computed total.
type TrackResult struct {
	Item        model.LaundryItem `json:"item"`
	ServiceName string            `json:"serviceName"`
	ServiceType model.ProductType `json:"serviceType"`
	UnitPrice   int64             `json:"unitPrice"`
	Total       int64             `json:"total"`
}

type laundryService struct {
	laundryRepo repository.LaundryRepository
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	hub         *ws.Hub
}

func NewLaundryService(
	laundryRepo repository.LaundryRepository,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	hub *ws.Hub,
) LaundryService {
	return &laundryService{
		laundryRepo: laundryRepo,
		productRepo: productRepo,
		txRepo:      txRepo,
		hub:         hub,
	}
}

func (s *laundryService) GetAll() ([]model.LaundryItem, error) {
	return s.laundryRepo.FindAll()
}

func (s *laundryService) GetByID(id int64) (*model.LaundryItem, error) {
	item, err := s.laundryRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

func (s *laundryService) Track(code string) (*TrackResult, error) {
	item, err := s.laundryRepo.FindByCode(code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	result := &TrackResult{
		Item:        *item,
		ServiceName: "Unknown",
		ServiceType: "Unknown",
	}

	// A deleted service leaves the tracking view with placeholder details,
	// same as every other dangling reference in this data model.
	if product, err := s.productRepo.FindByID(item.ServiceID); err == nil {
		result.ServiceName = product.Name
		result.ServiceType = product.Type
		result.UnitPrice = product.Price
		result.Total = product.Price * int64(item.Quantity)
	}

	return result, nil
}

func (s *laundryService) Create(req *CreateLaundryRequest) (*model.LaundryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	code, err := s.GenerateCode()
	if err != nil {
		return nil, err
	}

	item := &model.LaundryItem{
		Code:          code,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		Quantity:      req.Quantity,
		OutletID:      req.OutletID,
		ProcessStatus: model.ProcessOngoing,
		PaymentStatus: model.PaymentUnpaid,
		Notes:         req.Notes,
		CreatedAt:     time.Now().Format("2006-01-02"),
	}

	if err := s.laundryRepo.Create(item); err != nil {
		return nil, err
	}

	s.hub.Publish("laundry_created", item)
	return item, nil
}

func (s *laundryService) Update(id int64, req *UpdateLaundryRequest) (*model.LaundryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	patch := store.Record{
		"customerName":  req.CustomerName,
		"customerPhone": req.CustomerPhone,
		"serviceId":     req.ServiceID,
		"quantity":      req.Quantity,
		"outletId":      req.OutletID,
		"notes":         req.Notes,
	}

	item, err := s.laundryRepo.Update(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// UpdateStatus is the one path that moves status fields, and the only place
// the derived-transaction rule fires.
func (s *laundryService) UpdateStatus(id int64, req *StatusUpdateRequest) (*model.LaundryItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, err := s.laundryRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	// "sudah bayar" is a sink: the whole update is rejected before anything
	// reaches the store.
	if existing.PaymentStatus == model.PaymentPaid && req.PaymentStatus != model.PaymentPaid {
		return nil, ErrPaymentLocked
	}

	item, err := s.laundryRepo.Update(id, store.Record{
		"processStatus": req.ProcessStatus,
		"paymentStatus": req.PaymentStatus,
	})
	if err != nil {
		return nil, err
	}

	if err := s.deriveTransaction(item); err != nil {
		return nil, err
	}

	s.hub.Publish("laundry_status_updated", item)
	return item, nil
}

// deriveTransaction materializes the billing record the first time an item
// is both completed and paid. A missing referenced product skips creation
// silently; that mirrors how the console treats every dangling serviceId.
func (s *laundryService) deriveTransaction(item *model.LaundryItem) error {
	if item.ProcessStatus != model.ProcessDone || item.PaymentStatus != model.PaymentPaid {
		return nil
	}

	_, err := s.txRepo.FindByLaundryCode(item.Code)
	if err == nil {
		return nil // already billed
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	product, err := s.productRepo.FindByID(item.ServiceID)
	if err != nil {
		log.Debug().Str("code", item.Code).Int64("serviceId", item.ServiceID).
			Msg("service missing, skipping transaction derivation")
		return nil
	}

	tx := &model.Transaction{
		LaundryCode: item.Code,
		ServiceID:   item.ServiceID,
		UnitPrice:   product.Price,
		Quantity:    item.Quantity,
		Amount:      product.Price * int64(item.Quantity),
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := s.txRepo.Create(tx); err != nil {
		return err
	}

	log.Info().Str("code", item.Code).Int64("amount", tx.Amount).Msg("transaction derived")
	s.hub.Publish("transaction_created", tx)
	return nil
}

func (s *laundryService) Delete(id int64) error {
	return s.laundryRepo.Delete(id)
}

// GenerateCode builds the next human-readable code for the current year:
// the count of codes mentioning the year, plus one, zero-padded to three
// digits. Codes are year-scoped; outlets share one sequence.
func (s *laundryService) GenerateCode() (string, error) {
	year := time.Now().Year()
	count, err := s.laundryRepo.CountCodesContaining(strconv.Itoa(year))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("LD-%03d-%d", count+1, year), nil
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

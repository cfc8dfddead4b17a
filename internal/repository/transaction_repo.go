package repository

import (
	"go-laundry-console/internal/model"
	"go-laundry-console/internal/store"
)

// TransactionRepository is append-only: derived transactions are never
// updated or deleted once written.
type TransactionRepository interface {
	FindAll() ([]model.Transaction, error)
	FindByID(id int64) (*model.Transaction, error)
	FindByLaundryCode(code string) (*model.Transaction, error)
	Create(tx *model.Transaction) error
}

type transactionRepo struct {
	store *store.Store
}

func NewTransactionRepo(st *store.Store) TransactionRepository {
	return &transactionRepo{store: st}
}

func (r *transactionRepo) FindAll() ([]model.Transaction, error) {
	records, err := r.store.GetAll(model.EntityTransactions)
	if err != nil {
		return nil, err
	}
	return store.DecodeAll[model.Transaction](records)
}

func (r *transactionRepo) FindByID(id int64) (*model.Transaction, error) {
	rec, err := r.store.GetByID(model.EntityTransactions, id)
	if err != nil {
		return nil, err
	}
	return store.Decode[model.Transaction](rec)
}

func (r *transactionRepo) FindByLaundryCode(code string) (*model.Transaction, error) {
	txs, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range txs {
		if txs[i].LaundryCode == code {
			return &txs[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	rec, err := store.Encode(tx)
	if err != nil {
		return err
	}
	created, err := r.store.Create(model.EntityTransactions, rec)
	if err != nil {
		return err
	}
	tx.ID = store.RecordID(created)
	return nil
}

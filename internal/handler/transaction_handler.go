package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-laundry-console/internal/repository"
)

// TransactionHandler is read-only: transactions exist solely through the
// derivation rule, so there are no create, update, or delete routes.
type TransactionHandler struct {
	txRepo repository.TransactionRepository
}

func NewTransactionHandler(txRepo repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{txRepo: txRepo}
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	txs, err := h.txRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(txs)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.txRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}

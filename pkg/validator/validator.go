package validator

import (
	"github.com/go-playground/validator/v10"

	"go-laundry-console/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Closed-set validations for the domain enums
	validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return model.ValidRole(fl.Field().String())
	})
	validate.RegisterValidation("process_status", func(fl validator.FieldLevel) bool {
		switch model.ProcessStatus(fl.Field().String()) {
		case model.ProcessOngoing, model.ProcessDone, model.ProcessCancelled:
			return true
		}
		return false
	})
	validate.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
		switch model.PaymentStatus(fl.Field().String()) {
		case model.PaymentUnpaid, model.PaymentPaid, model.PaymentRefund:
			return true
		}
		return false
	})
	validate.RegisterValidation("product_type", func(fl validator.FieldLevel) bool {
		switch model.ProductType(fl.Field().String()) {
		case model.TypeKiloan, model.TypeSatuan:
			return true
		}
		return false
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javajoker/dukan-admin/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("shirt_size", validateShirtSize)
	validate.RegisterValidation("order_status", validateOrderStatus)
	validate.RegisterValidation("product_category", validateProductCategory)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName makes validation errors report the field names the dashboard
// sends, e.g. "couponCode" rather than "CouponCode".
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func validateShirtSize(fl validator.FieldLevel) bool {
	return models.Size(fl.Field().String()).Valid()
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}

func validateProductCategory(fl validator.FieldLevel) bool {
	return models.IsProductCategory(fl.Field().String())
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_without":
		return e.Field() + " is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return e.Field() + " needs at least " + e.Param() + " selection"
		}
		return e.Field() + " must be at least " + e.Param()
	case "numeric", "number":
		return e.Field() + " must be a number"
	case "shirt_size":
		return e.Field() + " must be one of S, M, L, XL"
	case "product_category":
		return e.Field() + " must be one of " + strings.Join(models.ProductCategories, ", ")
	case "order_status":
		return e.Field() + " must be one of pending, shipped, delivered, cancel"
	default:
		return e.Field() + " is invalid"
	}
}

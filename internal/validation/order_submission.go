package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"storefront/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError reports the first field of a submission that violated the
// schema, with a message safe to return to the caller.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

var bdPhonePattern = regexp.MustCompile(`^0\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so error payloads match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Local mobile numbers: 11 digits with a leading 0
	v.RegisterValidation("bd_phone", func(fl validator.FieldLevel) bool {
		return bdPhonePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateOrderSubmission checks every field rule of the order contract and
// returns a FieldError for the first violated field. Field order follows the
// struct declaration, so the first error is deterministic for a given
// payload. An empty email is normalized to absent rather than rejected.
// The function has no side effects beyond that normalization.
func ValidateOrderSubmission(sub *models.OrderSubmission) error {
	sub.CustomerEmail = strings.TrimSpace(sub.CustomerEmail)

	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &FieldError{Field: first.Field(), Message: messageFor(first)}
	}
	return &FieldError{Field: "", Message: "invalid request payload"}
}

func messageFor(fe validator.FieldError) string {
	switch fe.StructField() {
	case "CustomerName":
		return "customer name must be between 2 and 100 characters"
	case "CustomerPhone":
		return "phone number must be 11 digits starting with 0"
	case "CustomerEmail":
		return "email address is not valid"
	case "ShippingAddress":
		return "shipping address must be between 10 and 500 characters"
	case "City":
		return "city must be between 2 and 100 characters"
	case "Area":
		return "area must be at most 100 characters"
	case "Notes":
		return "notes must be at most 1000 characters"
	case "PaymentMethod":
		return "payment method must be one of cod, bkash, nagad, rocket or bank"
	case "TransactionID":
		return "transaction id must be at most 100 characters"
	case "Subtotal":
		return "subtotal must be greater than 0 and at most 10000000"
	case "Discount":
		return "discount must be between 0 and 10000000"
	case "CouponCode":
		return "coupon code must be at most 50 characters"
	case "ShippingCost":
		return "shipping cost must be between 0 and 10000"
	case "Total":
		return "total must be greater than 0 and at most 10000000"
	case "Items":
		if fe.Tag() == "max" {
			return "cart cannot contain more than 100 items"
		}
		return "cart cannot be empty"
	case "ID":
		return "item id must be a valid uuid"
	case "NameBN":
		return "item name must be between 1 and 200 characters"
	case "Quantity":
		return "item quantity must be between 1 and 1000"
	case "Price":
		return "item price must be greater than 0"
	case "SalePrice":
		return "item sale price must be greater than 0"
	}
	return fe.Field() + " is invalid"
}

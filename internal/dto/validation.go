package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = NewValidator()

// NewValidator returns a validator that understands decimal fields and reports
// fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterDecimalType(v)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// RegisterDecimalType lets numeric tags (gt, gte, ...) apply to decimal.Decimal.
// The float conversion is only used for comparison against tag literals.
func RegisterDecimalType(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// Validate checks s against its validate tags and reports failures as
// apperrors.ErrValidation.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(msgs, "; "))
}

package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// DateLayout is the dd/mm/yyyy layout checked by the "ddmmyyyy" tag.
const DateLayout = "02/01/2006"

var validate = validator.New()

func init() {
	// Report json names so messages match what the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// decimal.Decimal is validated as a number so gt/min tags work on prices.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	validate.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	// decimals=N rejects numbers with more than N fractional digits, matching
	// the scale of the unit_price column.
	validate.RegisterValidation("decimals", func(fl validator.FieldLevel) bool {
		places, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		var d decimal.Decimal
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			d = decimal.NewFromFloat(fl.Field().Float())
		case reflect.String:
			if d, err = decimal.NewFromString(fl.Field().String()); err != nil {
				return false
			}
		default:
			return false
		}
		return d.Equal(d.Truncate(int32(places)))
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// Describe turns a failed rule into a sentence for the user.
func Describe(e *ErrorResponse) string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s cannot be empty", e.FailedField)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.FailedField, e.Value)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.FailedField, e.Value)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.FailedField, strings.ReplaceAll(e.Value, " ", ", "))
	case "decimals":
		return fmt.Sprintf("%s must have at most %s decimal places", e.FailedField, e.Value)
	case "ddmmyyyy":
		return fmt.Sprintf("%s must be a valid date in dd/mm/yyyy format", e.FailedField)
	}
	return fmt.Sprintf("%s is invalid", e.FailedField)
}

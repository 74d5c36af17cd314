package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movementInput struct {
	Date      string          `json:"date" validate:"required,ddmmyyyy"`
	Type      string          `json:"type" validate:"required,oneof=Compra Venta"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gt=0,decimals=2"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
}

func valid() movementInput {
	return movementInput{
		Date:      "05/03/2024",
		Type:      "Compra",
		UnitPrice: decimal.RequireFromString("12.50"),
		Quantity:  3,
	}
}

func TestValidInputPasses(t *testing.T) {
	in := valid()
	assert.Empty(t, ValidateStruct(&in))
}

func TestDateFormat(t *testing.T) {
	for _, date := range []string{"2024-03-05", "5/3/2024", "31/02/2024", "05/13/2024", "hoy"} {
		in := valid()
		in.Date = date
		errs := ValidateStruct(&in)
		require.Len(t, errs, 1, date)
		assert.Equal(t, "date", errs[0].FailedField)
		assert.Equal(t, "ddmmyyyy", errs[0].Tag)
	}
}

func TestNonPositiveNumbers(t *testing.T) {
	in := valid()
	in.UnitPrice = decimal.Zero
	in.Quantity = -2

	errs := ValidateStruct(&in)
	require.Len(t, errs, 2)
	assert.Equal(t, "unit_price must be greater than 0", Describe(errs[0]))
	assert.Equal(t, "quantity must be greater than 0", Describe(errs[1]))
}

func TestOneOf(t *testing.T) {
	in := valid()
	in.Type = "Devolucion"

	errs := ValidateStruct(&in)
	require.Len(t, errs, 1)
	assert.Equal(t, "type must be one of: Compra, Venta", Describe(errs[0]))
}

func TestDescribeRequired(t *testing.T) {
	assert.Equal(t, "name cannot be empty", Describe(&ErrorResponse{FailedField: "name", Tag: "required"}))
}

func TestPriceDecimalPlaces(t *testing.T) {
	for _, price := range []string{"1", "1.5", "0.01", "199.99"} {
		in := valid()
		in.UnitPrice = decimal.RequireFromString(price)
		assert.Empty(t, ValidateStruct(&in), price)
	}

	for _, price := range []string{"0.001", "2.505"} {
		in := valid()
		in.UnitPrice = decimal.RequireFromString(price)
		errs := ValidateStruct(&in)
		require.Len(t, errs, 1, price)
		assert.Equal(t, "unit_price must have at most 2 decimal places", Describe(errs[0]))
	}
}

package input

import (
	"errors"
	"math"
	"strings"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Figures must fit in a float64, the range the amounts are exported with.
const (
	maxMagnitude = 308
	minMagnitude = -324
)

var (
	maxAmount     = decimal.NewFromFloat(math.MaxFloat64)
	minAmount     = decimal.NewFromFloat(math.SmallestNonzeroFloat64)
	errOutOfRange = errors.New("value out of range")
)

// field describes one figure of domain.FinancialInputs, in collection order.
type field struct {
	key    string
	prompt string
	amount bool
	set    func(*domain.FinancialInputs, decimal.Decimal)
}

var fields = []field{
	{key: "sales", prompt: "Enter total sales", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.Sales = v }},
	{key: "beginning_inventory", prompt: "Enter beginning inventory", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.BeginningInventory = v }},
	{key: "purchases", prompt: "Enter total purchases", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.Purchases = v }},
	{key: "purchase_returns", prompt: "Enter purchase returns", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.PurchaseReturns = v }},
	{key: "purchase_discounts", prompt: "Enter purchase discounts", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.PurchaseDiscounts = v }},
	{key: "freight", prompt: "Enter freight charges", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.Freight = v }},
	{key: "closing_inventory", prompt: "Enter closing inventory", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.ClosingInventory = v }},
	{key: "operating_expenses", prompt: "Enter total operating expenses", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.OperatingExpenses = v }},
	{key: "interest", prompt: "Enter total interest paid", amount: true,
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.Interest = v }},
	// entered as a percentage
	{key: "tax_rate_percent", prompt: "Enter tax rate (as a percentage, e.g., 20 for 20%)",
		set: func(in *domain.FinancialInputs, v decimal.Decimal) { in.TaxRate = v.Shift(-2) }},
}

// ParseAmount parses a decimal figure, surrounding whitespace allowed.
func ParseAmount(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, &InvalidNumericInputError{Field: name, Value: raw, Err: err}
	}
	if v.IsZero() {
		return decimal.Zero, nil
	}

	// The order of magnitude is checked first: comparing against the bounds
	// rescales both operands, which is as slow as the exponent is large.
	magnitude := int(v.Exponent()) + v.NumDigits() - 1
	if magnitude > maxMagnitude || magnitude < minMagnitude ||
		v.Abs().GreaterThan(maxAmount) || v.Abs().LessThan(minAmount) {
		return decimal.Zero, &InvalidNumericInputError{Field: name, Value: raw, Err: errOutOfRange}
	}
	return v, nil
}

package domain

import "github.com/shopspring/decimal"

// FinancialInputs holds the figures captured for a single report run.
// TaxRate is a fraction, e.g. 0.2 for 20%.
type FinancialInputs struct {
	Sales              decimal.Decimal
	BeginningInventory decimal.Decimal
	Purchases          decimal.Decimal
	PurchaseReturns    decimal.Decimal
	PurchaseDiscounts  decimal.Decimal
	Freight            decimal.Decimal
	ClosingInventory   decimal.Decimal
	OperatingExpenses  decimal.Decimal
	Interest           decimal.Decimal
	TaxRate            decimal.Decimal
}

// IncomeStatement holds the values derived from FinancialInputs.
type IncomeStatement struct {
	COGS               decimal.Decimal
	GrossProfit        decimal.Decimal
	OperatingProfit    decimal.Decimal
	EBIT               decimal.Decimal
	NetProfitBeforeTax decimal.Decimal
	Tax                decimal.Decimal
	EAIT               decimal.Decimal
}

type Verdict string

const (
	VerdictGood Verdict = "GOOD"
	VerdictBad  Verdict = "BAD"
)

func (v Verdict) String() string {
	return string(v)
}

// Conclusion is the sentence printed under the report.
func (v Verdict) Conclusion() string {
	if v == VerdictGood {
		return "The company's financial performance is GOOD as it made a profit."
	}
	return "The company's financial performance is BAD as it incurred a loss."
}

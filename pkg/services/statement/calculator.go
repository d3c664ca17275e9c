package statement

import (
	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// COGS = beginning inventory + purchases - returns - discounts + freight - closing inventory
func COGS(in domain.FinancialInputs) decimal.Decimal {
	return in.BeginningInventory.
		Add(in.Purchases).
		Sub(in.PurchaseReturns).
		Sub(in.PurchaseDiscounts).
		Add(in.Freight).
		Sub(in.ClosingInventory)
}

func GrossProfit(in domain.FinancialInputs) decimal.Decimal {
	return in.Sales.Sub(COGS(in))
}

func OperatingProfit(in domain.FinancialInputs) decimal.Decimal {
	return GrossProfit(in).Sub(in.OperatingExpenses)
}

// EBIT is the operating profit; there are no non-operating items.
func EBIT(in domain.FinancialInputs) decimal.Decimal {
	return OperatingProfit(in)
}

func NetProfitBeforeTax(in domain.FinancialInputs) decimal.Decimal {
	return EBIT(in).Sub(in.Interest)
}

// Tax applies the rate as given. Rates outside [0,1] are not clamped.
func Tax(in domain.FinancialInputs) decimal.Decimal {
	return NetProfitBeforeTax(in).Mul(in.TaxRate)
}

func EAIT(in domain.FinancialInputs) decimal.Decimal {
	return NetProfitBeforeTax(in).Sub(Tax(in))
}

// Compute derives the whole income statement from the inputs.
func Compute(in domain.FinancialInputs) domain.IncomeStatement {
	cogs := COGS(in)
	gross := in.Sales.Sub(cogs)
	operating := gross.Sub(in.OperatingExpenses)
	npbt := operating.Sub(in.Interest)
	tax := npbt.Mul(in.TaxRate)

	return domain.IncomeStatement{
		COGS:               cogs,
		GrossProfit:        gross,
		OperatingProfit:    operating,
		EBIT:               operating,
		NetProfitBeforeTax: npbt,
		Tax:                tax,
		EAIT:               npbt.Sub(tax),
	}
}

// Evaluate returns GOOD only for a strictly positive EAIT.
func Evaluate(eait decimal.Decimal) domain.Verdict {
	if eait.IsPositive() {
		return domain.VerdictGood
	}
	return domain.VerdictBad
}

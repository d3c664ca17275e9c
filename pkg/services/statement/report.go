package statement

import (
	"fmt"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/shopspring/decimal"
)

const (
	SectionTrading    = "Trading"
	SectionOperations = "Operations"
	SectionFinancing  = "Financing and Tax"
)


// BuildReport lays out inputs and derived values in the order they are printed.
func BuildReport(
	company, currency string,
	in domain.FinancialInputs,
	st domain.IncomeStatement,
) *domain.Report {
	line := func(name string, value decimal.Decimal, desc string) domain.ReportDetail {
		return domain.ReportDetail{Name: name, Value: value, Unit: currency, Description: desc}
	}

	return &domain.Report{
		Title:    "Financial Report for " + company,
		Company:  company,
		Currency: currency,
		Sections: []domain.ReportSection{
			{
				Title: SectionTrading,
				Details: []domain.ReportDetail{
					line("Sales", in.Sales, "Total sales"),
					line("Beginning Inventory", in.BeginningInventory, "Inventory at period start"),
					line("Purchases", in.Purchases, "Total purchases"),
					line("Purchase Returns", in.PurchaseReturns, "Goods returned to suppliers"),
					line("Purchase Discounts", in.PurchaseDiscounts, "Discounts received on purchases"),
					line("Freight", in.Freight, "Freight charges on purchases"),
					line("Closing Inventory", in.ClosingInventory, "Inventory at period end"),
					line("Cost of Goods Sold (COGS)", st.COGS, "Opening + purchases - returns - discounts + freight - closing"),
					line("Gross Profit", st.GrossProfit, "Sales - COGS"),
				},
			},
			{
				Title: SectionOperations,
				Details: []domain.ReportDetail{
					line("Operating Expenses", in.OperatingExpenses, "Total operating expenses"),
					line("Operating Profit", st.OperatingProfit, "Gross profit - operating expenses"),
					line("Earnings Before Interest and Taxes (EBIT)", st.EBIT, "Equal to operating profit"),
				},
			},
			{
				Title: SectionFinancing,
				Details: []domain.ReportDetail{
					line("Interest", in.Interest, "Total interest paid"),
					line("Net Profit Before Tax", st.NetProfitBeforeTax, "EBIT - interest"),
					line(fmt.Sprintf("Tax (%s%%)", percent(in.TaxRate)), st.Tax, "Net profit before tax x tax rate"),
					line("Earnings After Interest and Taxes (EAIT)", st.EAIT, "Net profit before tax - tax"),
				},
			},
		},
		Verdict: Evaluate(st.EAIT),
	}
}

// percent renders a fractional rate as a percentage, keeping one decimal
// place for whole numbers: 0.2 -> "20.0", 0.125 -> "12.5".
func percent(rate decimal.Decimal) string {
	p := rate.Shift(2)
	if p.IsInteger() {
		return p.StringFixed(1)
	}
	return p.String()
}

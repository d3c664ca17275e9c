package statement

import (
	"testing"

	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: expected %s, got %s", field, want, got.String())
}

func sampleInputs() domain.FinancialInputs {
	return domain.FinancialInputs{
		Sales:              d("1000"),
		BeginningInventory: d("100"),
		Purchases:          d("500"),
		PurchaseReturns:    d("20"),
		PurchaseDiscounts:  d("10"),
		Freight:            d("30"),
		ClosingInventory:   d("150"),
		OperatingExpenses:  d("200"),
		Interest:           d("50"),
		TaxRate:            d("0.2"),
	}
}

func TestCompute_ReferenceFigures(t *testing.T) {
	// Given
	in := sampleInputs()

	// When
	st := Compute(in)

	// Then
	assertDecimal(t, "450", st.COGS, "cogs")
	assertDecimal(t, "550", st.GrossProfit, "gross profit")
	assertDecimal(t, "350", st.OperatingProfit, "operating profit")
	assertDecimal(t, "350", st.EBIT, "ebit")
	assertDecimal(t, "300", st.NetProfitBeforeTax, "net profit before tax")
	assertDecimal(t, "60", st.Tax, "tax")
	assertDecimal(t, "240", st.EAIT, "eait")
	assert.Equal(t, domain.VerdictGood, Evaluate(st.EAIT))
}

func TestCompute_AllZeros(t *testing.T) {
	st := Compute(domain.FinancialInputs{})

	for name, v := range map[string]decimal.Decimal{
		"cogs":                  st.COGS,
		"gross profit":          st.GrossProfit,
		"operating profit":      st.OperatingProfit,
		"ebit":                  st.EBIT,
		"net profit before tax": st.NetProfitBeforeTax,
		"tax":                   st.Tax,
		"eait":                  st.EAIT,
	} {
		assert.Truef(t, v.IsZero(), "%s: expected 0, got %s", name, v)
	}
	assert.Equal(t, domain.VerdictBad, Evaluate(st.EAIT))
}

func TestCompute_MatchesStandaloneFormulas(t *testing.T) {
	tests := []struct {
		name string
		in   domain.FinancialInputs
	}{
		{name: "reference", in: sampleInputs()},
		{
			name: "loss making",
			in: domain.FinancialInputs{
				Sales:              d("120.55"),
				BeginningInventory: d("80"),
				Purchases:          d("90.10"),
				PurchaseReturns:    d("3.3"),
				PurchaseDiscounts:  d("1.25"),
				Freight:            d("4"),
				ClosingInventory:   d("10"),
				OperatingExpenses:  d("75"),
				Interest:           d("12.5"),
				TaxRate:            d("0.3"),
			},
		},
		{
			name: "negative values",
			in: domain.FinancialInputs{
				Sales:             d("-500"),
				Purchases:         d("-20"),
				OperatingExpenses: d("-7.77"),
				Interest:          d("-1"),
				TaxRate:           d("0.15"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Compute(tt.in)

			expectedCOGS := tt.in.BeginningInventory.Add(tt.in.Purchases).Sub(tt.in.PurchaseReturns).
				Sub(tt.in.PurchaseDiscounts).Add(tt.in.Freight).Sub(tt.in.ClosingInventory)
			assert.True(t, expectedCOGS.Equal(st.COGS))
			assert.True(t, st.COGS.Equal(COGS(tt.in)))
			assert.True(t, st.GrossProfit.Equal(tt.in.Sales.Sub(st.COGS)))
			assert.True(t, st.GrossProfit.Equal(GrossProfit(tt.in)))
			assert.True(t, st.OperatingProfit.Equal(OperatingProfit(tt.in)))
			assert.True(t, st.EBIT.Equal(st.OperatingProfit))
			assert.True(t, st.EBIT.Equal(EBIT(tt.in)))
			assert.True(t, st.NetProfitBeforeTax.Equal(NetProfitBeforeTax(tt.in)))
			assert.True(t, st.Tax.Equal(Tax(tt.in)))
			assert.True(t, st.EAIT.Equal(EAIT(tt.in)))

			oneMinusRate := decimal.NewFromInt(1).Sub(tt.in.TaxRate)
			assert.True(t, st.EAIT.Equal(st.NetProfitBeforeTax.Mul(oneMinusRate)),
				"eait %s != npbt*(1-rate) %s", st.EAIT, st.NetProfitBeforeTax.Mul(oneMinusRate))
		})
	}
}

func TestCompute_TaxRateIsNotClamped(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		tax     string
		eait    string
		verdict domain.Verdict
	}{
		{name: "negative rate", rate: "-0.5", tax: "-150", eait: "450", verdict: domain.VerdictGood},
		{name: "rate above one", rate: "1.5", tax: "450", eait: "-150", verdict: domain.VerdictBad},
		{name: "rate of exactly one", rate: "1", tax: "300", eait: "0", verdict: domain.VerdictBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInputs()
			in.TaxRate = d(tt.rate)

			st := Compute(in)

			assertDecimal(t, "300", st.NetProfitBeforeTax, "net profit before tax")
			assertDecimal(t, tt.tax, st.Tax, "tax")
			assertDecimal(t, tt.eait, st.EAIT, "eait")
			assert.Equal(t, tt.verdict, Evaluate(st.EAIT))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		eait     string
		expected domain.Verdict
	}{
		{"0.01", domain.VerdictGood},
		{"240", domain.VerdictGood},
		{"0", domain.VerdictBad},
		{"-0.01", domain.VerdictBad},
		{"-1000", domain.VerdictBad},
	}

	for _, tt := range tests {
		t.Run(tt.eait, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(d(tt.eait)))
		})
	}
}

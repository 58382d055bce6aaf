package eligibility

import "github.com/shopspring/decimal"

const (
	currencyScale     = 2
	intermediateScale = 8
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Installment is a flat-rate repayment plan.
type Installment struct {
	TotalInterest      decimal.Decimal
	TotalPayment       decimal.Decimal
	MonthlyInstallment decimal.Decimal
}

// Calculate computes flat-rate interest on the original principal:
//
//	rate          = ratePercent / 100        (scale 8)
//	years         = tenorMonths / 12         (scale 8)
//	totalInterest = round2(principal * rate * years)
//	totalPayment  = round2(principal + totalInterest)
//	monthly       = round2(totalPayment / tenorMonths)
//
// Rounding is half-up. Inputs must already be validated: principal > 0, tenorMonths > 0.
func Calculate(principal, ratePercent decimal.Decimal, tenorMonths int) Installment {
	tenor := decimal.NewFromInt(int64(tenorMonths))

	rate := ratePercent.DivRound(hundred, intermediateScale)
	years := tenor.DivRound(twelve, intermediateScale)

	totalInterest := principal.Mul(rate).Mul(years).Round(currencyScale)
	totalPayment := principal.Add(totalInterest).Round(currencyScale)
	monthly := totalPayment.DivRound(tenor, currencyScale)

	return Installment{
		TotalInterest:      totalInterest,
		TotalPayment:       totalPayment,
		MonthlyInstallment: monthly,
	}
}

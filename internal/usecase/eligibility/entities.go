package eligibility

import (
	"github.com/shopspring/decimal"
)

type SubmissionInput struct {
	PlafondID      uint64
	Amount         decimal.Decimal
	TenureMonths   int
	CustomerIncome decimal.Decimal
}

type SimulationInput struct {
	Amount decimal.Decimal
	Tenor  int
	// Optional; when nil the cheapest matching plafond is chosen.
	PlafondID *uint64
}

type SimulationResult struct {
	PlafondID          uint64          `json:"plafond_id"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	TenorMonth         int             `json:"tenor_month"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	TotalInterest      decimal.Decimal `json:"total_interest"`
	TotalPayment       decimal.Decimal `json:"total_payment"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

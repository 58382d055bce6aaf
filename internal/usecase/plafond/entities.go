package plafond

import "github.com/shopspring/decimal"

// RuleInput is an administrator's create/update request.
type RuleInput struct {
	MinIncome    decimal.Decimal
	MaxAmount    decimal.Decimal
	TenorMonth   int
	InterestRate decimal.Decimal
	// IsActive defaults to true on create and is left unchanged on update when nil.
	IsActive *bool
}

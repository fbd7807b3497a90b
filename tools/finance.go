// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tools

import (
	"context"
	"math"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	realestate "github.com/tae0y/real-estate-mcp"
	"github.com/tae0y/real-estate-mcp/apierr"
)

// LoanPaymentInput is the input for calculate_loan_payment.
type LoanPaymentInput struct {
	Principal10K  int     `json:"principal_10k" jsonschema:"Loan principal in 10k KRW units."`
	AnnualRatePct float64 `json:"annual_rate_pct" jsonschema:"Annual interest rate in percent."`
	Years         int     `json:"years" jsonschema:"Loan term in years."`
}

// LoanPaymentResult is the output of calculate_loan_payment.
type LoanPaymentResult struct {
	MonthlyPayment10K float64 `json:"monthly_payment_10k"`
	TotalPayment10K   float64 `json:"total_payment_10k"`
	TotalInterest10K  float64 `json:"total_interest_10k"`
	Principal10K      int     `json:"principal_10k"`
	AnnualRatePct     float64 `json:"annual_rate_pct"`
	Years             int     `json:"years"`
}

// CompoundGrowthInput is the input for calculate_compound_growth.
type CompoundGrowthInput struct {
	Initial10K             int     `json:"initial_10k" jsonschema:"Initial capital in 10k KRW units."`
	MonthlyContribution10K float64 `json:"monthly_contribution_10k" jsonschema:"Monthly contribution in 10k KRW units."`
	AnnualRatePct          float64 `json:"annual_rate_pct" jsonschema:"Annual return rate in percent."`
	Years                  int     `json:"years" jsonschema:"Investment horizon in years."`
}

// CompoundGrowthResult is the output of calculate_compound_growth.
type CompoundGrowthResult struct {
	FinalValue10K          float64 `json:"final_value_10k"`
	TotalContributed10K    float64 `json:"total_contributed_10k"`
	TotalGain10K           float64 `json:"total_gain_10k"`
	Initial10K             int     `json:"initial_10k"`
	MonthlyContribution10K float64 `json:"monthly_contribution_10k"`
	AnnualRatePct          float64 `json:"annual_rate_pct"`
	Years                  int     `json:"years"`
}

// CashflowInput is the input for calculate_monthly_cashflow.
type CashflowInput struct {
	MonthlyIncome10K      float64 `json:"monthly_income_10k" jsonschema:"Monthly net income in 10k KRW units."`
	MonthlyLoanPayment10K float64 `json:"monthly_loan_payment_10k" jsonschema:"Monthly loan payment in 10k KRW units."`
	MonthlyLivingCost10K  float64 `json:"monthly_living_cost_10k" jsonschema:"Monthly living cost in 10k KRW units. 0 applies the default 40% of income."`
	OtherMonthlyCosts10K  float64 `json:"other_monthly_costs_10k,omitempty" jsonschema:"Other recurring monthly costs in 10k KRW units."`
}

// CashflowResult is the output of calculate_monthly_cashflow.
type CashflowResult struct {
	MonthlyCashflow10K    float64 `json:"monthly_cashflow_10k"`
	MonthlyIncome10K      float64 `json:"monthly_income_10k"`
	MonthlyLoanPayment10K float64 `json:"monthly_loan_payment_10k"`
	MonthlyLivingCost10K  float64 `json:"monthly_living_cost_10k"`
	OtherMonthlyCosts10K  float64 `json:"other_monthly_costs_10k"`
	LivingCostAutoApplied bool    `json:"living_cost_auto_applied"`
}

func (t *Toolset) registerFinance(rt *realestate.Runtime) {
	realestate.AddTool(rt, &mcp.Tool{
		Name: "calculate_loan_payment",
		Description: "Calculate the equal principal-and-interest monthly payment (EMI) " +
			"for a loan, in 10k KRW units. Use together with trade summaries to judge " +
			"affordability.",
	}, t.handleLoanPayment)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "calculate_compound_growth",
		Description: "Calculate compounded asset growth with initial capital and " +
			"monthly contributions, in 10k KRW units.",
	}, t.handleCompoundGrowth)

	realestate.AddTool(rt, &mcp.Tool{
		Name: "calculate_monthly_cashflow",
		Description: "Calculate monthly free cashflow after debt service and living " +
			"costs, in 10k KRW units. When monthly_living_cost_10k is 0, 40% of income " +
			"is assumed.",
	}, t.handleCashflow)
}

func (t *Toolset) handleLoanPayment(ctx context.Context, req *mcp.CallToolRequest, in LoanPaymentInput) (*mcp.CallToolResult, any, error) {
	if in.Principal10K < 1 {
		return respond(apierr.Validation("principal_10k must be >= 1"))
	}
	if in.AnnualRatePct < 0 {
		return respond(apierr.Validation("annual_rate_pct must be >= 0"))
	}
	if in.Years < 1 {
		return respond(apierr.Validation("years must be >= 1"))
	}

	r := in.AnnualRatePct / 100 / 12
	n := float64(in.Years * 12)
	var monthly float64
	if r == 0 {
		monthly = float64(in.Principal10K) / n
	} else {
		growth := math.Pow(1+r, n)
		monthly = float64(in.Principal10K) * r * growth / (growth - 1)
	}

	totalPayment := monthly * n
	totalInterest := totalPayment - float64(in.Principal10K)

	return respond(LoanPaymentResult{
		MonthlyPayment10K: round2(monthly),
		TotalPayment10K:   round2(totalPayment),
		TotalInterest10K:  round2(totalInterest),
		Principal10K:      in.Principal10K,
		AnnualRatePct:     in.AnnualRatePct,
		Years:             in.Years,
	})
}

func (t *Toolset) handleCompoundGrowth(ctx context.Context, req *mcp.CallToolRequest, in CompoundGrowthInput) (*mcp.CallToolResult, any, error) {
	if in.Initial10K < 0 {
		return respond(apierr.Validation("initial_10k must be >= 0"))
	}
	if in.MonthlyContribution10K < 0 {
		return respond(apierr.Validation("monthly_contribution_10k must be >= 0"))
	}
	if in.AnnualRatePct < 0 {
		return respond(apierr.Validation("annual_rate_pct must be >= 0"))
	}
	if in.Years < 1 {
		return respond(apierr.Validation("years must be >= 1"))
	}

	r := in.AnnualRatePct / 100 / 12
	n := float64(in.Years * 12)
	var final float64
	if r == 0 {
		final = float64(in.Initial10K) + in.MonthlyContribution10K*n
	} else {
		growth := math.Pow(1+r, n)
		final = float64(in.Initial10K)*growth + in.MonthlyContribution10K*(growth-1)/r
	}

	totalContributed := float64(in.Initial10K) + in.MonthlyContribution10K*n
	totalGain := final - totalContributed

	return respond(CompoundGrowthResult{
		FinalValue10K:          round2(final),
		TotalContributed10K:    round2(totalContributed),
		TotalGain10K:           round2(totalGain),
		Initial10K:             in.Initial10K,
		MonthlyContribution10K: in.MonthlyContribution10K,
		AnnualRatePct:          in.AnnualRatePct,
		Years:                  in.Years,
	})
}

func (t *Toolset) handleCashflow(ctx context.Context, req *mcp.CallToolRequest, in CashflowInput) (*mcp.CallToolResult, any, error) {
	if in.MonthlyIncome10K <= 0 {
		return respond(apierr.Validation("monthly_income_10k must be > 0"))
	}
	if in.MonthlyLoanPayment10K < 0 {
		return respond(apierr.Validation("monthly_loan_payment_10k must be >= 0"))
	}

	autoApplied := in.MonthlyLivingCost10K == 0
	livingCost := in.MonthlyLivingCost10K
	if autoApplied {
		livingCost = in.MonthlyIncome10K * 0.4
	}
	cashflow := in.MonthlyIncome10K - in.MonthlyLoanPayment10K - livingCost - in.OtherMonthlyCosts10K

	return respond(CashflowResult{
		MonthlyCashflow10K:    round2(cashflow),
		MonthlyIncome10K:      in.MonthlyIncome10K,
		MonthlyLoanPayment10K: in.MonthlyLoanPayment10K,
		MonthlyLivingCost10K:  round2(livingCost),
		OtherMonthlyCosts10K:  in.OtherMonthlyCosts10K,
		LivingCostAutoApplied: autoApplied,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

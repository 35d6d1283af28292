// Package emi computes flat-interest installment figures for the calculator
// and apply pages.
package emi

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"loan-portal/internal/validation"
)

// Calculator defaults and slider bounds.
const (
	DefaultPrincipal = 100000
	DefaultRate      = 8.5
	DefaultTerm      = 60

	MinPrincipal  = 10000
	MaxPrincipal  = 10000000
	StepPrincipal = 10000
	MinRate       = 1
	MaxRate       = 20
	StepRate      = 0.1
	MinTerm       = 1
	MaxTerm       = 360
)

// Bounds holds the calculator slider limits for the page.
type Bounds struct {
	MinPrincipal, MaxPrincipal, StepPrincipal int
	MinRate, MaxRate                          int
	StepRate                                  float64
	MinTerm, MaxTerm                          int
}

func SliderBounds() Bounds {
	return Bounds{
		MinPrincipal: MinPrincipal, MaxPrincipal: MaxPrincipal, StepPrincipal: StepPrincipal,
		MinRate: MinRate, MaxRate: MaxRate, StepRate: StepRate,
		MinTerm: MinTerm, MaxTerm: MaxTerm,
	}
}

// estimateMarkup is the apply-page rule of thumb applied on top of amount/duration.
const estimateMarkup = 1.085

type Input struct {
	Principal  float64 `json:"amount" query:"amount" validate:"gte=0"`
	AnnualRate float64 `json:"rate"   query:"rate"   validate:"gte=0"`
	TermMonths int     `json:"term"   query:"term"   validate:"gt=0"`
}

type Result struct {
	MonthlyInstallment float64 `json:"monthlyInstallment"`
	TotalInterest      float64 `json:"totalInterest"`
	TotalPayable       float64 `json:"totalPayable"`
}

// Slice is one segment of the principal/interest chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Validate reports out-of-range inputs as validation.FieldErrors.
func (in Input) Validate() error { return validation.Validate(&in) }

func Defaults() Input {
	return Input{Principal: DefaultPrincipal, AnnualRate: DefaultRate, TermMonths: DefaultTerm}
}

// Calculate uses simple (flat) interest over the whole term, not an
// amortizing schedule. Undefined figures come back as 0, never NaN.
func Calculate(in Input) Result {
	p, r, t := in.Principal, in.AnnualRate, float64(in.TermMonths)

	interest := finite(p * r * t / 100)
	total := finite(p + interest)
	var monthly float64
	if in.TermMonths > 0 {
		monthly = finite(total / t)
	}
	return Result{MonthlyInstallment: monthly, TotalInterest: interest, TotalPayable: total}
}

// Breakdown splits the payable amount into principal and interest.
func (r Result) Breakdown() []Slice {
	principal := finite(r.TotalPayable - r.TotalInterest)
	return []Slice{
		{Name: "Principal", Value: principal},
		{Name: "Interest", Value: r.TotalInterest},
	}
}

// EstimateMonthly is the rough per-month figure shown next to a loan application.
func EstimateMonthly(amount float64, durationMonths int) float64 {
	if durationMonths <= 0 {
		return 0
	}
	return finite(math.Round(amount / float64(durationMonths) * estimateMarkup))
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders v as rupees with en-IN grouping and two decimals.
func FormatINR(v float64) string {
	return "₹" + inr.Sprintf("%v", number.Decimal(finite(v), number.Scale(2)))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Package scoring evaluates credit files: debt ratio, guarantee coverage,
// risk-bureau history and applicant profile are combined into a 0-100 score,
// from which blocking reasons and advice are derived.
//
// Every function is pure. Nothing here returns an error: divisions by zero
// fall back to documented values and input validation belongs to callers.
package scoring

import (
	"math"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
)

const (
	// DefaultAnnualRate is the nominal annual interest rate, in percent,
	// assumed when scoring a credit file.
	DefaultAnnualRate = 12.0

	// DefaultDuration replaces a zero duration, in months.
	DefaultDuration = 12

	// MinimumScore is the approval threshold.
	MinimumScore = 75
)

// Factor weights, summing to 100.
const (
	WeightDSR        = 30
	WeightGuarantee  = 25
	WeightRiskBureau = 25
	WeightProfile    = 20
)

// Factor is one scored axis: the raw metric, its 0-100 sub-score and weight.
type Factor struct {
	Value  float64 `json:"value"`
	Score  int     `json:"score"`
	Weight int     `json:"weight"`
}

// Details exposes how a score was built.
//
// RiskBureau.Value is the number of incidents; Profile.Value is the profile
// heuristic before clamping.
type Details struct {
	DSR            Factor  `json:"dsr"`
	Guarantee      Factor  `json:"guarantee"`
	RiskBureau     Factor  `json:"risk_bureau"`
	Profile        Factor  `json:"profile"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

// Result is a composite score with its per-factor breakdown.
type Result struct {
	Score   int     `json:"score"`
	Details Details `json:"details"`
}

// CalculateDSR returns the debt service ratio in percent. A zero income is
// the worst case and yields 100.
func CalculateDSR(monthlyIncome, monthlyExpenses, monthlyPayment float64) float64 {
	if monthlyIncome == 0 {
		return 100
	}
	return (monthlyExpenses + monthlyPayment) / monthlyIncome * 100
}

// CalculatePayment returns the installment of an annuity loan.
//
// duration is in months; periodicity groups months into payment periods and
// the annual rate is spread over the implied number of periods per year.
// A zero rate repays the principal linearly.
func CalculatePayment(amount float64, duration int, annualRate float64, periodicity dto.Periodicity) float64 {
	periods := paymentPeriods(duration, periodicity)
	if periods == 0 {
		return 0
	}

	rate := (annualRate / 100) / (12 / (float64(duration) / float64(periods)))
	if rate == 0 {
		return amount / float64(periods)
	}

	growth := math.Pow(1+rate, float64(periods))
	return amount * (rate * growth) / (growth - 1)
}

func paymentPeriods(duration int, periodicity dto.Periodicity) int {
	d := float64(duration)
	switch periodicity {
	case dto.PeriodicityMonthly, "":
		return duration
	case dto.PeriodicityQuarterly:
		return int(math.Ceil(d / 3))
	case dto.PeriodicityBiannual:
		return int(math.Ceil(d / 6))
	default:
		return int(math.Ceil(d / 12))
	}
}

// CalculateGuaranteeCoverage returns the collateral value as a percentage of
// the requested amount. A zero amount counts as fully covered.
func CalculateGuaranteeCoverage(guaranteeValue, creditAmount float64) float64 {
	if creditAmount == 0 {
		return 100
	}
	return guaranteeValue / creditAmount * 100
}

// CalculateScore computes the composite score of a credit file. It is
// deterministic: identical files give identical results.
func CalculateScore(f dto.CreditFile) Result {
	duration := effectiveDuration(f)

	payment := CalculatePayment(f.CreditAmount, duration, DefaultAnnualRate, effectivePeriodicity(f))
	dsr := CalculateDSR(f.MonthlyIncome, f.MonthlyExpenses, payment)
	coverage := CalculateGuaranteeCoverage(f.GuaranteeValue, f.CreditAmount)
	incidents := f.Incidents()
	profile := profileValue(f.MonthlyIncome, f.CreditAmount, duration)

	details := Details{
		DSR:            Factor{Value: dsr, Score: dsrScore(dsr), Weight: WeightDSR},
		Guarantee:      Factor{Value: coverage, Score: guaranteeScore(coverage), Weight: WeightGuarantee},
		RiskBureau:     Factor{Value: float64(len(incidents)), Score: riskBureauScore(incidents), Weight: WeightRiskBureau},
		Profile:        Factor{Value: float64(profile), Score: clamp(profile, 0, 100), Weight: WeightProfile},
		MonthlyPayment: payment,
	}

	weighted := details.DSR.Score*details.DSR.Weight +
		details.Guarantee.Score*details.Guarantee.Weight +
		details.RiskBureau.Score*details.RiskBureau.Weight +
		details.Profile.Score*details.Profile.Weight

	score := int(math.Round(float64(weighted) / 100))
	return Result{Score: clamp(score, 0, 100), Details: details}
}

// RiskFactors projects the breakdown onto the four radar-chart axes.
func (d Details) RiskFactors() []dto.RiskFactor {
	return []dto.RiskFactor{
		{Label: "DSR", Value: float64(d.DSR.Score), Max: 100, Weight: d.DSR.Weight},
		{Label: "Garanties", Value: float64(d.Guarantee.Score), Max: 100, Weight: d.Guarantee.Weight},
		{Label: "Historique", Value: float64(d.RiskBureau.Score), Max: 100, Weight: d.RiskBureau.Weight},
		{Label: "Profil", Value: float64(d.Profile.Score), Max: 100, Weight: d.Profile.Weight},
	}
}

func dsrScore(dsr float64) int {
	switch {
	case dsr <= 30:
		return 100
	case dsr <= 40:
		return 80
	case dsr <= 50:
		return 60
	case dsr <= 60:
		return 40
	case dsr <= 70:
		return 20
	default:
		return 0
	}
}

func guaranteeScore(coverage float64) int {
	switch {
	case coverage >= 150:
		return 100
	case coverage >= 120:
		return 85
	case coverage >= 100:
		return 70
	case coverage >= 80:
		return 50
	case coverage >= 60:
		return 30
	default:
		return 10
	}
}

// riskBureauScore: a contentious incident overrides everything else.
func riskBureauScore(incidents []dto.RiskIncident) int {
	if len(incidents) == 0 {
		return 100
	}
	if hasContentious(incidents) {
		return 0
	}
	for _, inc := range incidents {
		if isActiveHighRisk(inc) {
			return 20
		}
	}
	return 60
}

func profileValue(monthlyIncome, creditAmount float64, duration int) int {
	score := 50

	annualIncome := monthlyIncome * 12
	switch {
	case annualIncome >= creditAmount*2:
		score += 25
	case annualIncome >= creditAmount:
		score += 10
	default:
		score -= 20
	}

	switch {
	case duration <= 24:
		score += 15
	case duration <= 48:
		score += 5
	default:
		score -= 10
	}

	return score
}

func hasContentious(incidents []dto.RiskIncident) bool {
	for _, inc := range incidents {
		if inc.Status == dto.IncidentContentious {
			return true
		}
	}
	return false
}

func isActiveHighRisk(inc dto.RiskIncident) bool {
	return inc.Status == dto.IncidentActive && inc.Risk == dto.RiskHigh
}

func effectiveDuration(f dto.CreditFile) int {
	if f.Duration == 0 {
		return DefaultDuration
	}
	return f.Duration
}

func effectivePeriodicity(f dto.CreditFile) dto.Periodicity {
	if f.Periodicity == "" {
		return dto.PeriodicityMonthly
	}
	return f.Periodicity
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

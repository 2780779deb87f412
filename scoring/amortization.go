package scoring

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/utils"
)

// Schedule is a monthly repayment plan.
//
// Rows are rounded one by one, so the sum of the rounded principals may
// differ by a few units from the amount borrowed. TotalPayment and
// TotalInterest are computed from the unrounded installment.
type Schedule struct {
	Rows           []dto.AmortizationRow `json:"rows"`
	MonthlyPayment float64               `json:"monthly_payment"`
	TotalPayment   decimal.Decimal       `json:"total_payment"`
	TotalInterest  decimal.Decimal       `json:"total_interest"`
}

// GenerateAmortizationTable builds the monthly schedule of an annuity loan.
// Periodicity is ignored: rows are always monthly. Row k falls k months
// after start.
func GenerateAmortizationTable(amount float64, duration int, annualRate float64, start time.Time) Schedule {
	schedule := Schedule{
		Rows:          []dto.AmortizationRow{},
		TotalPayment:  decimal.Zero,
		TotalInterest: decimal.Zero,
	}
	if duration <= 0 {
		return schedule
	}

	monthlyRate := annualRate / 100 / 12
	payment := annuity(amount, duration, monthlyRate)
	balance := amount

	for month := 1; month <= duration; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance = math.Max(0, balance-principal)

		schedule.Rows = append(schedule.Rows, dto.AmortizationRow{
			Month:     month,
			Date:      utils.FormatDate(start.AddDate(0, month, 0)),
			Principal: roundUnit(principal),
			Interest:  roundUnit(interest),
			Payment:   roundUnit(payment),
			Balance:   roundUnit(balance),
		})
	}

	schedule.MonthlyPayment = payment
	if !isFinite(payment) {
		return schedule
	}

	total := decimal.NewFromFloat(payment).Mul(decimal.NewFromInt(int64(duration)))
	schedule.TotalPayment = total.Round(0)
	schedule.TotalInterest = total.Sub(decimal.NewFromFloat(amount)).Round(0)
	return schedule
}

// RoundedTotals sums the rounded payment and principal columns.
func (s Schedule) RoundedTotals() (payments, principals int64) {
	for _, row := range s.Rows {
		payments += row.Payment
		principals += row.Principal
	}
	return payments, principals
}

func annuity(amount float64, periods int, rate float64) float64 {
	if rate == 0 {
		return amount / float64(periods)
	}
	growth := math.Pow(1+rate, float64(periods))
	return amount * (rate * growth) / (growth - 1)
}

// roundUnit rounds half away from zero; non-finite values map to 0.
func roundUnit(v float64) int64 {
	if !isFinite(v) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

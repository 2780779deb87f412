package dto

import (
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// AmortizationRequest asks for the monthly schedule of a loan.
// AnnualRate defaults to the configured rate, StartDate (dd/mm/yyyy) to today.
type AmortizationRequest struct {
	Amount     float64  `json:"amount" binding:"required"`
	Duration   int      `json:"duration" binding:"required"`
	AnnualRate *float64 `json:"annual_rate,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
}

// Validate performs basic validation on the request
func (r *AmortizationRequest) Validate() error {
	if !validAmount(r.Amount) || r.Amount == 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if r.Duration <= 0 {
		return ErrInvalidDuration
	}
	if r.AnnualRate != nil && !validAmount(*r.AnnualRate) {
		return ErrInvalidRate
	}
	return nil
}

// ReportInspectionRequest carries an exported analysis report.
type ReportInspectionRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate checks the upload against the size limit and the PDF extension.
func (r *ReportInspectionRequest) Validate(maxSize int64) error {
	if r.File == nil {
		return ErrMissingFile
	}
	if r.File.Size > maxSize {
		return ErrFileTooLarge
	}
	if !strings.EqualFold(filepath.Ext(r.File.Filename), ".pdf") {
		return ErrInvalidFileType
	}
	return nil
}

// Validate rejects credit files the engine cannot evaluate meaningfully:
// negative or non-finite amounts, a non-positive duration and unknown
// enumeration values. Empty enumerations are accepted and read as defaults.
func (f *CreditFile) Validate() error {
	if strings.TrimSpace(f.ClientName) == "" {
		return ErrMissingClientName
	}

	amounts := []struct {
		field string
		value float64
	}{
		{"credit_amount", f.CreditAmount},
		{"guarantee_value", f.GuaranteeValue},
		{"monthly_income", f.MonthlyIncome},
		{"monthly_expenses", f.MonthlyExpenses},
		{"existing_credits", f.ExistingCredits},
	}
	for _, a := range amounts {
		if !validAmount(a.value) {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, a.field)
		}
	}

	if f.Duration <= 0 {
		return ErrInvalidDuration
	}

	switch f.Periodicity {
	case "", PeriodicityMonthly, PeriodicityQuarterly, PeriodicityBiannual, PeriodicityAnnual:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPeriodicity, f.Periodicity)
	}

	switch f.ClientType {
	case "", ClientTypeIndividual, ClientTypeEnterprise:
	default:
		return fmt.Errorf("%w: client_type %q", ErrInvalidEnum, f.ClientType)
	}

	switch f.Status {
	case "", FileStatusPending, FileStatusApproved, FileStatusRejected, FileStatusSimulation:
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidEnum, f.Status)
	}

	for i, inc := range f.RiskRecord.Incidents {
		if err := inc.validate(); err != nil {
			return fmt.Errorf("incident %d: %w", i+1, err)
		}
	}

	return nil
}

func (inc RiskIncident) validate() error {
	if strings.TrimSpace(inc.Bank) == "" {
		return fmt.Errorf("%w: bank is required", ErrInvalidIncident)
	}
	if !validAmount(inc.Amount) || !validAmount(inc.Outstanding) {
		return fmt.Errorf("%w: negative amount", ErrInvalidIncident)
	}
	switch inc.Risk {
	case RiskLow, RiskMedium, RiskHigh:
	default:
		return fmt.Errorf("%w: risk %q", ErrInvalidIncident, inc.Risk)
	}
	switch inc.Status {
	case IncidentActive, IncidentRegularized, IncidentContentious:
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidIncident, inc.Status)
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

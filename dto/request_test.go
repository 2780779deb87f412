package dto

import (
	"math"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFile() CreditFile {
	return CreditFile{
		ClientName:      "Jean-Pierre Kouassi",
		ClientType:      ClientTypeIndividual,
		CreditAmount:    5000000,
		Duration:        24,
		Periodicity:     PeriodicityMonthly,
		GuaranteeValue:  6500000,
		MonthlyIncome:   850000,
		MonthlyExpenses: 280000,
		RiskRecord: RiskRecord{
			Status: RiskRecordIncidents,
			Incidents: []RiskIncident{
				{Bank: "SGBCI", Amount: 1000000, Outstanding: 200000, Risk: RiskLow, Status: IncidentRegularized},
			},
		},
	}
}

func TestCreditFileValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *CreditFile)
		want   error
	}{
		{"valid", func(f *CreditFile) {}, nil},
		{"empty enums default", func(f *CreditFile) { f.Periodicity = ""; f.ClientType = ""; f.Status = "" }, nil},
		{"zero amount", func(f *CreditFile) { f.CreditAmount = 0 }, nil},
		{"missing name", func(f *CreditFile) { f.ClientName = "  " }, ErrMissingClientName},
		{"negative amount", func(f *CreditFile) { f.CreditAmount = -1 }, ErrInvalidAmount},
		{"negative expenses", func(f *CreditFile) { f.MonthlyExpenses = -10 }, ErrInvalidAmount},
		{"NaN income", func(f *CreditFile) { f.MonthlyIncome = math.NaN() }, ErrInvalidAmount},
		{"infinite guarantee", func(f *CreditFile) { f.GuaranteeValue = math.Inf(1) }, ErrInvalidAmount},
		{"zero duration", func(f *CreditFile) { f.Duration = 0 }, ErrInvalidDuration},
		{"negative duration", func(f *CreditFile) { f.Duration = -12 }, ErrInvalidDuration},
		{"unknown periodicity", func(f *CreditFile) { f.Periodicity = "weekly" }, ErrInvalidPeriodicity},
		{"unknown client type", func(f *CreditFile) { f.ClientType = "physical" }, ErrInvalidEnum},
		{"unknown status", func(f *CreditFile) { f.Status = "archived" }, ErrInvalidEnum},
		{"incident without bank", func(f *CreditFile) { f.RiskRecord.Incidents[0].Bank = "" }, ErrInvalidIncident},
		{"incident unknown risk", func(f *CreditFile) { f.RiskRecord.Incidents[0].Risk = "severe" }, ErrInvalidIncident},
		{"incident negative outstanding", func(f *CreditFile) { f.RiskRecord.Incidents[0].Outstanding = -1 }, ErrInvalidIncident},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.mutate(&f)
			err := f.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAmortizationRequestValidate(t *testing.T) {
	rate := 9.5
	negative := -1.0

	assert.NoError(t, (&AmortizationRequest{Amount: 1000000, Duration: 12}).Validate())
	assert.NoError(t, (&AmortizationRequest{Amount: 1000000, Duration: 12, AnnualRate: &rate}).Validate())
	assert.ErrorIs(t, (&AmortizationRequest{Amount: 0, Duration: 12}).Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, (&AmortizationRequest{Amount: 1000, Duration: 0}).Validate(), ErrInvalidDuration)
	assert.ErrorIs(t, (&AmortizationRequest{Amount: 1000, Duration: 3, AnnualRate: &negative}).Validate(), ErrInvalidRate)
}

func TestReportInspectionRequestValidate(t *testing.T) {
	assert.ErrorIs(t, (&ReportInspectionRequest{}).Validate(1024), ErrMissingFile)

	big := &ReportInspectionRequest{File: &multipart.FileHeader{Filename: "r.pdf", Size: 2048}}
	assert.ErrorIs(t, big.Validate(1024), ErrFileTooLarge)

	txt := &ReportInspectionRequest{File: &multipart.FileHeader{Filename: "r.txt", Size: 10}}
	assert.ErrorIs(t, txt.Validate(1024), ErrInvalidFileType)

	ok := &ReportInspectionRequest{File: &multipart.FileHeader{Filename: "Rapport.PDF", Size: 10}}
	assert.NoError(t, ok.Validate(1024))
}

func TestIncidentsNeverNil(t *testing.T) {
	f := CreditFile{}
	assert.NotNil(t, f.Incidents())
	assert.Empty(t, f.Incidents())
}

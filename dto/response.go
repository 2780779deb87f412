package dto

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Custom errors
var (
	ErrDossierNotFound    = errors.New("dossier not found")
	ErrMissingClientName  = errors.New("client_name is required")
	ErrInvalidAmount      = errors.New("amounts must be finite and non-negative")
	ErrInvalidDuration    = errors.New("duration must be a positive number of months")
	ErrInvalidPeriodicity = errors.New("periodicity must be monthly, quarterly, biannual or annual")
	ErrInvalidEnum        = errors.New("unknown enumeration value")
	ErrInvalidIncident    = errors.New("invalid risk incident")
	ErrInvalidRate        = errors.New("annual_rate must be finite and non-negative")
	ErrInvalidDate        = errors.New("dates must use the dd/mm/yyyy format")
	ErrMissingFile        = errors.New("file is required")
	ErrFileTooLarge       = errors.New("file exceeds the upload size limit")
	ErrInvalidFileType    = errors.New("only PDF reports are accepted")
	ErrUnreadableReport   = errors.New("file is not a readable analysis report")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// DossierListResponse is the filtered demo catalog.
type DossierListResponse struct {
	Dossiers []CreditFile `json:"dossiers" yaml:"dossiers"`
	Total    int          `json:"total" yaml:"total"`
}

// AnalysisResponse is the synthetic note of one credit file. Dossier carries
// the derived fields (score, factors, strengths, weaknesses, recommendations,
// blocking reasons).
type AnalysisResponse struct {
	AnalysisID        string     `json:"analysis_id" yaml:"analysis_id"`
	AnalyzedAt        string     `json:"analyzed_at" yaml:"analyzed_at"`
	Dossier           CreditFile `json:"dossier" yaml:"dossier"`
	MonthlyPayment    float64    `json:"monthly_payment" yaml:"monthly_payment"`
	DSR               float64    `json:"dsr" yaml:"dsr"`
	GuaranteeCoverage float64    `json:"guarantee_coverage" yaml:"guarantee_coverage"`
	Band              string     `json:"band" yaml:"band"`
	Blocked           bool       `json:"blocked" yaml:"blocked"`
	Opinion           string     `json:"opinion" yaml:"opinion"`
}

// AmortizationResponse is a monthly repayment schedule.
type AmortizationResponse struct {
	Amount         float64         `json:"amount" yaml:"amount"`
	Duration       int             `json:"duration" yaml:"duration"`
	AnnualRate     float64         `json:"annual_rate" yaml:"annual_rate"`
	MonthlyPayment float64         `json:"monthly_payment" yaml:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment" yaml:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest" yaml:"total_interest"`

	// Sums of the rounded columns, which drift from the totals above.
	RoundedPayments  int64             `json:"rounded_payments" yaml:"rounded_payments"`
	RoundedPrincipal int64             `json:"rounded_principal" yaml:"rounded_principal"`
	Rows             []AmortizationRow `json:"rows" yaml:"rows"`
}

// ReportSummary is what could be read back from an exported report.
type ReportSummary struct {
	FileName        string   `json:"file_name" yaml:"file_name"`
	Pages           int      `json:"pages" yaml:"pages"`
	Brand           string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	ClientName      string   `json:"client_name" yaml:"client_name"`
	GeneratedOn     string   `json:"generated_on,omitempty" yaml:"generated_on,omitempty"`
	Score           int      `json:"score" yaml:"score"`
	Opinion         string   `json:"opinion" yaml:"opinion"`
	BlockingReasons int      `json:"blocking_reasons" yaml:"blocking_reasons"`
	Sections        []string `json:"sections" yaml:"sections"`
}

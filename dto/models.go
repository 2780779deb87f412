package dto

type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeEnterprise ClientType = "enterprise"
)

type Periodicity string

const (
	PeriodicityMonthly   Periodicity = "monthly"
	PeriodicityQuarterly Periodicity = "quarterly"
	PeriodicityBiannual  Periodicity = "biannual"
	PeriodicityAnnual    Periodicity = "annual"
)

type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusApproved   FileStatus = "approved"
	FileStatusRejected   FileStatus = "rejected"
	FileStatusSimulation FileStatus = "simulation"
)

type RiskRecordStatus string

const (
	RiskRecordClean     RiskRecordStatus = "clean"
	RiskRecordIncidents RiskRecordStatus = "incidents"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type IncidentStatus string

const (
	IncidentActive      IncidentStatus = "active"
	IncidentRegularized IncidentStatus = "regularized"
	IncidentContentious IncidentStatus = "contentious"
)

// RiskIncident is one credit line reported by another bank to the risk bureau
// (Centrale des Risques).
type RiskIncident struct {
	Bank        string         `json:"bank" yaml:"bank"`
	Amount      float64        `json:"amount" yaml:"amount"`
	Outstanding float64        `json:"outstanding" yaml:"outstanding"`
	Risk        RiskLevel      `json:"risk" yaml:"risk"`
	Status      IncidentStatus `json:"status" yaml:"status"`
}

type RiskRecord struct {
	Status    RiskRecordStatus `json:"status" yaml:"status"`
	Incidents []RiskIncident   `json:"incidents" yaml:"incidents"`
}

// RiskFactor is one weighted axis of the score breakdown (radar chart).
type RiskFactor struct {
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Max    float64 `json:"max" yaml:"max"`
	Weight int     `json:"weight" yaml:"weight"`
}

// CreditFile is a credit request ("dossier") under evaluation.
// Amounts are in currency units (FCFA), duration in months.
type CreditFile struct {
	ID         int        `json:"id" yaml:"id"`
	ClientName string     `json:"client_name" yaml:"client_name"`
	ClientType ClientType `json:"client_type" yaml:"client_type"`

	CreditAmount float64     `json:"credit_amount" yaml:"credit_amount"`
	Duration     int         `json:"duration" yaml:"duration"`
	Periodicity  Periodicity `json:"periodicity" yaml:"periodicity"`
	Purpose      string      `json:"purpose" yaml:"purpose"`

	GuaranteeValue  float64 `json:"guarantee_value" yaml:"guarantee_value"`
	MonthlyIncome   float64 `json:"monthly_income" yaml:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses" yaml:"monthly_expenses"`
	ExistingCredits float64 `json:"existing_credits" yaml:"existing_credits"`

	RiskRecord RiskRecord `json:"risk_record" yaml:"risk_record"`

	Score           int          `json:"score" yaml:"score"`
	Status          FileStatus   `json:"status" yaml:"status"`
	DateCreated     string       `json:"date_created" yaml:"date_created"` // "YYYY-MM-DD"
	RiskFactors     []RiskFactor `json:"risk_factors" yaml:"risk_factors"`
	Strengths       []string     `json:"strengths" yaml:"strengths"`
	Weaknesses      []string     `json:"weaknesses" yaml:"weaknesses"`
	Recommendations []string     `json:"recommendations" yaml:"recommendations"`
	BlockingReasons []string     `json:"blocking_reasons" yaml:"blocking_reasons"`
}

// Incidents returns the risk-bureau incidents, never nil.
func (f *CreditFile) Incidents() []RiskIncident {
	if f.RiskRecord.Incidents == nil {
		return []RiskIncident{}
	}
	return f.RiskRecord.Incidents
}

// AmortizationRow is one period of a repayment schedule.
type AmortizationRow struct {
	Month     int    `json:"month" yaml:"month"`
	Date      string `json:"date" yaml:"date"` // "dd/mm/yyyy"
	Principal int64  `json:"principal" yaml:"principal"`
	Interest  int64  `json:"interest" yaml:"interest"`
	Payment   int64  `json:"payment" yaml:"payment"`
	Balance   int64  `json:"balance" yaml:"balance"`
}

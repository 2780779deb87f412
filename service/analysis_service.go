package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/repository"
	"github.com/Aashish23092/e3w-credit-analysis/scoring"
	"github.com/Aashish23092/e3w-credit-analysis/utils"
)

// AnalysisService runs the scoring engine on catalog dossiers and on
// submitted credit files.
type AnalysisService struct {
	repo       repository.DossierRepository
	annualRate float64
	now        func() time.Time
}

// NewAnalysisService creates a service. annualRate is the default rate of
// amortization schedules; scoring always uses scoring.DefaultAnnualRate.
func NewAnalysisService(repo repository.DossierRepository, annualRate float64) *AnalysisService {
	return &AnalysisService{
		repo:       repo,
		annualRate: annualRate,
		now:        time.Now,
	}
}

// ListDossiers returns the matching catalog dossiers with their derived
// fields filled in.
func (s *AnalysisService) ListDossiers(query string, status dto.FileStatus) dto.DossierListResponse {
	dossiers := s.repo.List(query, status)
	for i, d := range dossiers {
		dossiers[i] = scoring.Assess(d).Apply(d)
	}
	return dto.DossierListResponse{
		Dossiers: dossiers,
		Total:    len(dossiers),
	}
}

// GetDossier returns one catalog dossier, raw (as stored) or assessed.
func (s *AnalysisService) GetDossier(id int, assessed bool) (*dto.CreditFile, error) {
	d, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if assessed {
		d = scoring.Assess(d).Apply(d)
	}
	return &d, nil
}

// AnalyzeDossier produces the synthetic note of a catalog dossier.
func (s *AnalysisService) AnalyzeDossier(id int) (*dto.AnalysisResponse, error) {
	d, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	return s.analyze(d), nil
}

// Analyze validates a submitted credit file and produces its synthetic note.
func (s *AnalysisService) Analyze(f dto.CreditFile) (*dto.AnalysisResponse, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credit file: %w", err)
	}
	return s.analyze(f), nil
}

func (s *AnalysisService) analyze(f dto.CreditFile) *dto.AnalysisResponse {
	a := scoring.Assess(f)

	response := &dto.AnalysisResponse{
		AnalysisID:        uuid.NewString(),
		AnalyzedAt:        s.now().UTC().Format(time.RFC3339),
		Dossier:           a.Apply(f),
		MonthlyPayment:    a.Details.MonthlyPayment,
		DSR:               a.Details.DSR.Value,
		GuaranteeCoverage: a.Details.Guarantee.Value,
		Band:              string(a.Band),
		Blocked:           a.Blocking.Blocked,
		Opinion:           string(a.Opinion),
	}

	log.WithFields(log.Fields{
		"analysis_id": response.AnalysisID,
		"client":      f.ClientName,
		"score":       a.Score,
		"blocked":     a.Blocking.Blocked,
	}).Info("credit file analyzed")

	return response
}

// Schedule builds the amortization table of a loan. Without an explicit
// rate the service default applies; without a start date, today.
func (s *AnalysisService) Schedule(req dto.AmortizationRequest) (*dto.AmortizationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rate := s.annualRate
	if req.AnnualRate != nil {
		rate = *req.AnnualRate
	}

	start := s.now()
	if req.StartDate != "" {
		var err error
		start, err = utils.ParseDate(req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", dto.ErrInvalidDate, req.StartDate)
		}
	}

	schedule := scoring.GenerateAmortizationTable(req.Amount, req.Duration, rate, start)
	payments, principal := schedule.RoundedTotals()

	log.WithFields(log.Fields{
		"amount":   req.Amount,
		"duration": req.Duration,
		"rate":     rate,
	}).Debug("amortization schedule generated")

	return &dto.AmortizationResponse{
		Amount:         req.Amount,
		Duration:       req.Duration,
		AnnualRate:     rate,
		MonthlyPayment: schedule.MonthlyPayment,
		TotalPayment:   schedule.TotalPayment,
		TotalInterest:  schedule.TotalInterest,

		RoundedPayments:  payments,
		RoundedPrincipal: principal,
		Rows:             schedule.Rows,
	}, nil
}

func roundedAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

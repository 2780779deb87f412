package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/scoring"
	"github.com/Aashish23092/e3w-credit-analysis/utils"
)

// Report is a generated analysis report.
type Report struct {
	FileName string
	Content  []byte
	Pages    int
}

type ReportService struct {
	pdfProcessor PDFProcessor
	brand        string
	now          func() time.Time
}

func NewReportService(pdfProcessor PDFProcessor, brand string) *ReportService {
	if brand == "" {
		brand = "E3W"
	}
	return &ReportService{
		pdfProcessor: pdfProcessor,
		brand:        brand,
		now:          time.Now,
	}
}

// Generate renders the analysis report of f as a PDF and checks the result
// with the PDF validator before handing it out.
func (s *ReportService) Generate(f dto.CreditFile) (*Report, error) {
	now := s.now()
	assessment := scoring.Assess(f)

	content, err := renderTextPDF(s.reportLines(f, assessment, now))
	if err != nil {
		return nil, err
	}
	if err := s.pdfProcessor.Validate(content); err != nil {
		return nil, fmt.Errorf("generated report failed validation: %w", err)
	}

	pages, err := s.pdfProcessor.PageCount(content)
	if err != nil {
		return nil, err
	}

	report := &Report{
		FileName: ReportFileName(f.ClientName, now),
		Content:  content,
		Pages:    pages,
	}

	log.WithFields(log.Fields{
		"dossier": f.ID,
		"file":    report.FileName,
		"pages":   pages,
		"bytes":   len(content),
	}).Info("analysis report generated")

	return report, nil
}

// Inspect reads back an exported analysis report.
func (s *ReportService) Inspect(fileName string, data []byte) (*dto.ReportSummary, error) {
	if err := s.pdfProcessor.Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableReport, err)
	}

	pages, err := s.pdfProcessor.PageCount(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableReport, err)
	}

	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableReport, err)
	}

	summary, err := utils.ParseAnalysisReport(text)
	if err != nil {
		if errors.Is(err, dto.ErrUnreadableReport) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", dto.ErrUnreadableReport, err)
	}
	summary.FileName = fileName
	summary.Pages = pages

	log.WithFields(log.Fields{
		"file":   fileName,
		"client": summary.ClientName,
		"score":  summary.Score,
	}).Info("analysis report inspected")

	return &summary, nil
}

var unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]+`)

// ReportFileName names a report after the client and the generation date:
// Rapport_Analyse_<client>_<yyyy-mm-dd>.pdf. Characters that are not allowed
// in file names are replaced.
func ReportFileName(clientName string, date time.Time) string {
	name := unsafeFileChars.ReplaceAllString(strings.TrimSpace(clientName), "_")
	return fmt.Sprintf("Rapport_Analyse_%s_%s.pdf", name, date.Format("2006-01-02"))
}

func (s *ReportService) reportLines(f dto.CreditFile, a scoring.Assessment, now time.Time) []string {
	title := utils.ReportTitle + " " + s.brand

	lines := []string{
		title,
		strings.Repeat("=", len([]rune(title))),
		"",
		"Dossier: " + f.ClientName,
		"Date: " + utils.FormatDate(now),
		"",
		fmt.Sprintf("SCORE GLOBAL: %d/100", a.Score),
	}

	lines = appendSection(lines, utils.SectionCreditDetails,
		"Montant demandé: "+utils.FormatAmount(f.CreditAmount)+" FCFA",
		fmt.Sprintf("Durée: %d mois", f.Duration),
		"Périodicité: "+periodicityLabel(f.Periodicity),
		"Objet: "+f.Purpose,
		"Mensualité estimée: "+utils.FormatAmount(roundedAmount(a.Details.MonthlyPayment))+" FCFA",
		fmt.Sprintf("Taux d'endettement (DSR): %.1f%%", a.Details.DSR.Value),
		fmt.Sprintf("Couverture des garanties: %.1f%%", a.Details.Guarantee.Value),
	)

	var factors []string
	for _, rf := range a.RiskFactors {
		factors = append(factors, fmt.Sprintf("- %s: %.0f/%.0f (poids %d%%)", rf.Label, rf.Value, rf.Max, rf.Weight))
	}
	lines = appendSection(lines, utils.SectionRiskAnalysis, factors...)

	lines = appendSection(lines, utils.SectionRiskBureau, riskBureauLines(f)...)
	lines = appendSection(lines, utils.SectionStrengths, bulletsOr(a.Strengths, "Dossier complet")...)
	lines = appendSection(lines, utils.SectionWeaknesses, bulletsOr(a.Weaknesses, "Aucun point faible identifié")...)
	lines = appendSection(lines, utils.SectionRecommendation, bulletsOr(a.Recommendations, "Aucune recommandation particulière")...)
	if a.Blocking.Blocked {
		lines = appendSection(lines, utils.SectionBlocking, bullets(a.Blocking.Reasons)...)
	}
	lines = appendSection(lines, utils.SectionOpinion, opinionText(a.Opinion))

	return append(lines,
		"",
		"---",
		"Généré par "+s.brand+" - Système d'Analyse de Crédit",
	)
}

func appendSection(lines []string, heading string, body ...string) []string {
	lines = append(lines, "", heading, strings.Repeat("-", len([]rune(heading))))
	return append(lines, body...)
}

func riskBureauLines(f dto.CreditFile) []string {
	incidents := f.Incidents()
	if len(incidents) == 0 {
		return []string{"Aucun incident déclaré. Situation saine."}
	}

	lines := []string{fmt.Sprintf("ATTENTION: Incidents détectés dans %d établissement(s)", len(incidents))}
	for _, inc := range incidents {
		lines = append(lines, fmt.Sprintf("- %s: montant %s FCFA, encours %s FCFA (risque %s, %s)",
			inc.Bank, utils.FormatAmount(inc.Amount), utils.FormatAmount(inc.Outstanding),
			riskLabel(inc.Risk), incidentLabel(inc.Status)))
	}
	return lines
}

func bullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "- "+item)
	}
	return out
}

func bulletsOr(items []string, fallback string) []string {
	if len(items) == 0 {
		return []string{"- " + fallback}
	}
	return bullets(items)
}

func opinionText(o scoring.Opinion) string {
	switch o {
	case scoring.OpinionFavorable:
		return utils.OpinionFavorableText
	case scoring.OpinionUnfavorable:
		return utils.OpinionUnfavorableText
	default:
		return utils.OpinionPendingText
	}
}

func periodicityLabel(p dto.Periodicity) string {
	switch p {
	case dto.PeriodicityQuarterly:
		return "Trimestrielle"
	case dto.PeriodicityBiannual:
		return "Semestrielle"
	case dto.PeriodicityAnnual:
		return "Annuelle"
	default:
		return "Mensuelle"
	}
}

func riskLabel(r dto.RiskLevel) string {
	switch r {
	case dto.RiskHigh:
		return "élevé"
	case dto.RiskMedium:
		return "moyen"
	default:
		return "faible"
	}
}

func incidentLabel(s dto.IncidentStatus) string {
	switch s {
	case dto.IncidentContentious:
		return "contentieux"
	case dto.IncidentRegularized:
		return "régularisé"
	default:
		return "actif"
	}
}

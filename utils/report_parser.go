package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
)

// Report headings, shared with the report generator.
const (
	ReportTitle           = "RAPPORT D'ANALYSE"
	SectionCreditDetails  = "DETAILS DU CREDIT"
	SectionRiskAnalysis   = "ANALYSE DES RISQUES"
	SectionRiskBureau     = "CENTRALE DES RISQUES"
	SectionStrengths      = "POINTS FORTS"
	SectionWeaknesses     = "POINTS FAIBLES"
	SectionRecommendation = "RECOMMANDATIONS"
	SectionBlocking       = "MOTIFS DE BLOCAGE"
	SectionOpinion        = "AVIS"

	OpinionFavorableText   = "FAVORABLE - Dossier validé pour traitement"
	OpinionUnfavorableText = "DÉFAVORABLE - Dossier bloqué"
	OpinionPendingText     = "EN ATTENTE - Analyse complémentaire requise"
)

var (
	brandRegex     = regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(ReportTitle) + `[ \t]+(\S.*?)\s*$`)
	clientRegex    = regexp.MustCompile(`(?m)^\s*Dossier\s*:\s*(\S.*?)\s*$`)
	dateRegex      = regexp.MustCompile(`(?m)^\s*Date\s*:\s*(\d{2}/\d{2}/\d{4})`)
	scoreRegex     = regexp.MustCompile(`SCORE GLOBAL\s*:\s*(\d{1,3})\s*/\s*100`)
	underlineRegex = regexp.MustCompile(`^-{3,}$`)
)

// ParseAnalysisReport reads back the text of an exported analysis report.
// It fails with dto.ErrUnreadableReport when neither the client nor the
// score can be found.
func ParseAnalysisReport(text string) (dto.ReportSummary, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	summary := dto.ReportSummary{
		Sections: []string{},
	}

	if m := brandRegex.FindStringSubmatch(text); len(m) > 1 {
		summary.Brand = m[1]
	}
	if m := dateRegex.FindStringSubmatch(text); len(m) > 1 {
		summary.GeneratedOn = m[1]
	}

	clientMatch := clientRegex.FindStringSubmatch(text)
	scoreMatch := scoreRegex.FindStringSubmatch(text)
	if len(clientMatch) < 2 || len(scoreMatch) < 2 {
		return summary, dto.ErrUnreadableReport
	}
	summary.ClientName = clientMatch[1]

	score, err := strconv.Atoi(scoreMatch[1])
	if err != nil || score > 100 {
		return summary, dto.ErrUnreadableReport
	}
	summary.Score = score

	sections := splitSections(text)
	for _, s := range sections {
		summary.Sections = append(summary.Sections, s.heading)

		switch s.heading {
		case SectionBlocking:
			summary.BlockingReasons = countBullets(s.lines)
		case SectionOpinion:
			summary.Opinion = parseOpinion(s.lines)
		}
	}

	return summary, nil
}

type reportSection struct {
	heading string
	lines   []string
}

// splitSections cuts the report on headings, i.e. lines underlined with
// dashes. The "---" footer separator has a blank line above it and is
// therefore not a heading.
func splitSections(text string) []reportSection {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var sections []reportSection
	for i := 0; i < len(lines); i++ {
		if i+1 < len(lines) && lines[i] != "" && underlineRegex.MatchString(lines[i+1]) {
			sections = append(sections, reportSection{heading: lines[i]})
			i++
			continue
		}
		if len(sections) > 0 && lines[i] != "" {
			last := &sections[len(sections)-1]
			last.lines = append(last.lines, lines[i])
		}
	}
	return sections
}

func countBullets(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "- ") {
			n++
		}
	}
	return n
}

func parseOpinion(lines []string) string {
	for _, l := range lines {
		upper := strings.ToUpper(l)
		switch {
		case strings.HasPrefix(upper, "FAVORABLE"):
			return "favorable"
		case strings.HasPrefix(upper, "DÉFAVORABLE"), strings.HasPrefix(upper, "DEFAVORABLE"):
			return "unfavorable"
		case strings.HasPrefix(upper, "EN ATTENTE"):
			return "pending"
		}
	}
	return ""
}

package scoring

import (
	"fmt"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/utils"
)

const (
	maxAcceptableDSR      = 50.0
	minAcceptableCoverage = 80.0
)

// Blocking is the outcome of the blocking rules. Blocked is true iff at
// least one reason applies.
type Blocking struct {
	Blocked bool     `json:"blocked"`
	Reasons []string `json:"reasons"`
}

// CheckBlocking evaluates every blocking rule independently and collects the
// reasons in a fixed order: score threshold, contentious incident, active
// high-risk credits, debt ratio, guarantee coverage.
//
// Only the first contentious incident is cited, while every active high-risk
// incident gets its own reason.
func CheckBlocking(f dto.CreditFile) Blocking {
	reasons := []string{}
	result := CalculateScore(f)
	details := result.Details

	if result.Score < MinimumScore {
		reasons = append(reasons, fmt.Sprintf(
			"Le score global de %d/100 est inférieur au seuil minimum de %d/100 requis pour l'approbation.",
			result.Score, MinimumScore))
	}

	incidents := f.Incidents()
	for _, inc := range incidents {
		if inc.Status != dto.IncidentContentious {
			continue
		}
		reasons = append(reasons, fmt.Sprintf(
			"ALERTE CENTRALE DES RISQUES: %s présente un impayé contentieux auprès de %s pour un montant de %s FCFA "+
				"avec un encours de %s FCFA. Le client doit régulariser cette situation avant toute nouvelle demande de crédit.",
			f.ClientName, inc.Bank, utils.FormatAmount(inc.Amount), utils.FormatAmount(inc.Outstanding)))
		break
	}

	for _, inc := range incidents {
		if !isActiveHighRisk(inc) {
			continue
		}
		reasons = append(reasons, fmt.Sprintf(
			"ATTENTION: Crédit à risque élevé détecté chez %s - Encours: %s FCFA. "+
				"Ce crédit actif impacte significativement la capacité d'endettement du client.",
			inc.Bank, utils.FormatAmount(inc.Outstanding)))
	}

	if details.DSR.Value > maxAcceptableDSR {
		reasons = append(reasons, fmt.Sprintf(
			"Le taux d'endettement (DSR) de %.1f%% dépasse le seuil acceptable de %.0f%%. "+
				"Les charges mensuelles de %s FCFA ajoutées aux remboursements prévus représentent "+
				"une part trop importante des revenus de %s FCFA.",
			details.DSR.Value, maxAcceptableDSR, utils.FormatAmount(f.MonthlyExpenses), utils.FormatAmount(f.MonthlyIncome)))
	}

	if details.Guarantee.Value < minAcceptableCoverage {
		reasons = append(reasons, fmt.Sprintf(
			"La couverture par les garanties est insuffisante: %.1f%% du montant demandé. "+
				"Les garanties proposées d'une valeur de %s FCFA ne couvrent pas suffisamment le crédit de %s FCFA. "+
				"Une couverture minimale de 100%% est recommandée.",
			details.Guarantee.Value, utils.FormatAmount(f.GuaranteeValue), utils.FormatAmount(f.CreditAmount)))
	}

	return Blocking{
		Blocked: len(reasons) > 0,
		Reasons: reasons,
	}
}

package scoring

import (
	"fmt"
	"math"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
	"github.com/Aashish23092/e3w-credit-analysis/utils"
)

const (
	targetDSR = 40.0

	// share of the monthly income that may go to expenses and installments
	affordableShare = 0.4

	// share of the affordable amount suggested when reducing a request
	amountSafetyMargin = 0.8
)

// GenerateRecommendations suggests how the applicant could improve the file.
func GenerateRecommendations(f dto.CreditFile) []string {
	recommendations := []string{}
	details := CalculateScore(f).Details
	duration := effectiveDuration(f)

	if details.Guarantee.Value < 100 {
		needed := f.CreditAmount - f.GuaranteeValue
		recommendations = append(recommendations, fmt.Sprintf(
			"Fournir une garantie supplémentaire d'une valeur minimale de %s FCFA pour atteindre une couverture de 100%%. "+
				"Cela améliorerait le score de garantie de %d/100 à environ %d/100.",
			utils.FormatAmount(needed), details.Guarantee.Score, guaranteeScore(100)))
	}

	if details.DSR.Value > targetDSR {
		maxPayment := f.MonthlyIncome*affordableShare - f.MonthlyExpenses

		// Expenses alone already reach the target ratio: no duration or
		// amount brings the file back under it.
		if maxPayment > 0 {
			suggestedDuration := int(math.Ceil(f.CreditAmount / maxPayment))
			if suggestedDuration > duration {
				recommendations = append(recommendations, fmt.Sprintf(
					"Allonger la durée du crédit à %d mois permettrait de réduire la mensualité et "+
						"ramener le taux d'endettement sous le seuil de %.0f%%.",
					suggestedDuration, targetDSR))
			}

			maxAmount := maxPayment * float64(duration) * amountSafetyMargin
			if maxAmount < f.CreditAmount {
				recommendations = append(recommendations, fmt.Sprintf(
					"Réduire le montant du crédit à %s FCFA maximum pour maintenir "+
						"un taux d'endettement acceptable avec la durée actuelle.",
					utils.FormatAmount(maxAmount)))
			}
		}
	}

	for _, inc := range f.Incidents() {
		if inc.Status == dto.IncidentActive {
			recommendations = append(recommendations,
				"Régulariser les crédits en cours auprès des autres établissements financiers avant de soumettre une nouvelle demande. "+
					"Présenter les preuves de remboursement ou de régularisation.")
			break
		}
	}

	if f.MonthlyIncome < f.CreditAmount/12 {
		recommendations = append(recommendations,
			"Envisager un apport personnel pour réduire le montant à financer et améliorer le profil de risque.")
	}

	return recommendations
}

// GenerateStrengths lists the favourable points of the file.
func GenerateStrengths(f dto.CreditFile) []string {
	strengths := []string{}
	details := CalculateScore(f).Details

	if details.DSR.Value <= 30 {
		strengths = append(strengths, "Excellent taux d'endettement permettant une bonne marge de sécurité")
	}
	if details.Guarantee.Value >= 120 {
		strengths = append(strengths, "Garanties solides couvrant largement le montant du crédit")
	}
	if details.RiskBureau.Score == 100 {
		strengths = append(strengths, "Historique de crédit irréprochable - Aucun incident à la Centrale des Risques")
	}
	if f.MonthlyIncome*12 >= f.CreditAmount*2 {
		strengths = append(strengths, "Revenus stables et suffisants par rapport au montant demandé")
	}
	if effectiveDuration(f) <= 24 {
		strengths = append(strengths, "Durée de crédit courte réduisant le risque global")
	}

	return strengths
}

// GenerateWeaknesses lists the unfavourable points of the file.
func GenerateWeaknesses(f dto.CreditFile) []string {
	weaknesses := []string{}
	details := CalculateScore(f).Details
	incidents := f.Incidents()

	if details.DSR.Value > maxAcceptableDSR {
		weaknesses = append(weaknesses, "Taux d'endettement élevé")
	}

	switch {
	case details.Guarantee.Value < 60:
		weaknesses = append(weaknesses, "Garanties très insuffisantes")
	case details.Guarantee.Value < 100:
		weaknesses = append(weaknesses, "Garanties insuffisantes")
	}

	if hasContentious(incidents) {
		weaknesses = append(weaknesses, "Impayé contentieux à la Centrale des Risques")
	}
	for _, inc := range incidents {
		if inc.Status == dto.IncidentActive {
			weaknesses = append(weaknesses, "Crédit en cours chez un autre établissement")
			break
		}
	}

	if f.MonthlyIncome*12 < f.CreditAmount {
		weaknesses = append(weaknesses, "Revenus annuels inférieurs au montant demandé")
	}
	if effectiveDuration(f) > 48 {
		weaknesses = append(weaknesses, "Durée de crédit longue augmentant le risque")
	}

	return weaknesses
}

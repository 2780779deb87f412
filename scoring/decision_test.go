package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/e3w-credit-analysis/dto"
)

func TestCheckBlockingKouassi(t *testing.T) {
	blocking := CheckBlocking(kouassiFile())

	require.True(t, blocking.Blocked)
	require.Len(t, blocking.Reasons, 2)
	assert.Contains(t, blocking.Reasons[0], "70/100")
	assert.Contains(t, blocking.Reasons[0], "75/100")
	assert.Contains(t, blocking.Reasons[1], "60.6%")
	assert.Contains(t, blocking.Reasons[1], "50%")
}

func TestCheckBlockingReasonOrder(t *testing.T) {
	blocking := CheckBlocking(yaoFile())

	require.True(t, blocking.Blocked)
	require.Len(t, blocking.Reasons, 4)
	assert.Contains(t, blocking.Reasons[0], "12/100")
	assert.True(t, strings.HasPrefix(blocking.Reasons[1], "ALERTE CENTRALE DES RISQUES: Paul Yao"))
	assert.Contains(t, blocking.Reasons[1], "Coris Bank")
	assert.Contains(t, blocking.Reasons[2], "DSR")
	assert.Contains(t, blocking.Reasons[3], "56.2%")
}

func TestCheckBlockingCitesFirstContentiousOnly(t *testing.T) {
	f := strongFile()
	f.RiskRecord.Incidents = []dto.RiskIncident{
		{Bank: "Coris Bank", Amount: 1000000, Outstanding: 500000, Risk: dto.RiskHigh, Status: dto.IncidentContentious},
		{Bank: "Orabank", Amount: 2000000, Outstanding: 900000, Risk: dto.RiskHigh, Status: dto.IncidentContentious},
	}

	alerts := 0
	for _, reason := range CheckBlocking(f).Reasons {
		if strings.HasPrefix(reason, "ALERTE") {
			alerts++
			assert.Contains(t, reason, "Coris Bank")
		}
	}
	assert.Equal(t, 1, alerts)
}

func TestCheckBlockingEveryActiveHighRisk(t *testing.T) {
	f := dto.CreditFile{
		ClientName:      "Ibrahim Ouattara",
		CreditAmount:    3000000,
		Duration:        36,
		GuaranteeValue:  3000000,
		MonthlyIncome:   600000,
		MonthlyExpenses: 100000,
		RiskRecord: dto.RiskRecord{Incidents: []dto.RiskIncident{
			{Bank: "NSIA", Outstanding: 1200000, Risk: dto.RiskHigh, Status: dto.IncidentActive},
			{Bank: "BOA", Outstanding: 800000, Risk: dto.RiskHigh, Status: dto.IncidentActive},
			{Bank: "SIB", Risk: dto.RiskHigh, Status: dto.IncidentRegularized},
			{Bank: "BICICI", Risk: dto.RiskMedium, Status: dto.IncidentActive},
		}},
	}

	blocking := CheckBlocking(f)
	require.True(t, blocking.Blocked)
	require.Len(t, blocking.Reasons, 3)
	assert.Contains(t, blocking.Reasons[1], "NSIA")
	assert.Contains(t, blocking.Reasons[2], "BOA")
	assert.Equal(t, "1200000", digitsOnly(blocking.Reasons[1][strings.Index(blocking.Reasons[1], "Encours"):]))
}

func TestCheckBlockingClean(t *testing.T) {
	blocking := CheckBlocking(strongFile())

	assert.False(t, blocking.Blocked)
	assert.NotNil(t, blocking.Reasons)
	assert.Empty(t, blocking.Reasons)
}

func TestCheckBlockingIndependentOfScore(t *testing.T) {
	// A high score does not hide a weak coverage.
	f := strongFile()
	f.GuaranteeValue = 700000

	result := CalculateScore(f)
	require.GreaterOrEqual(t, result.Score, MinimumScore)

	blocking := CheckBlocking(f)
	require.True(t, blocking.Blocked)
	require.Len(t, blocking.Reasons, 1)
	assert.Contains(t, blocking.Reasons[0], "70.0%")
}

func TestBlockedIffReasons(t *testing.T) {
	for _, f := range []dto.CreditFile{kouassiFile(), yaoFile(), strongFile(), {}} {
		blocking := CheckBlocking(f)
		assert.Equal(t, len(blocking.Reasons) > 0, blocking.Blocked)
	}
}

// digitsOnly keeps the first run of digits and grouping separators, dropping
// the separators.
func digitsOnly(s string) string {
	var b strings.Builder
	started := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			started = true
			b.WriteRune(r)
		case started && (r == ' ' || r == '\u00a0' || r == '\u202f'):
		case started:
			return b.String()
		}
	}
	return b.String()
}

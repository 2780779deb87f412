package scoring

import "github.com/Aashish23092/e3w-credit-analysis/dto"

// Opinion is the final advice printed on the analysis report.
type Opinion string

const (
	OpinionFavorable   Opinion = "favorable"
	OpinionUnfavorable Opinion = "unfavorable"
	OpinionPending     Opinion = "pending"
)

// Band is the colour segment of the score gauge.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Assessment gathers everything derived from a credit file.
type Assessment struct {
	Score           int              `json:"score"`
	Band            Band             `json:"band"`
	Details         Details          `json:"details"`
	RiskFactors     []dto.RiskFactor `json:"risk_factors"`
	Blocking        Blocking         `json:"blocking"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	Recommendations []string         `json:"recommendations"`
	Opinion         Opinion          `json:"opinion"`
}

// Assess runs the scoring, blocking and advice functions on f. Each of them
// recomputes the score on its own; they agree because scoring is
// deterministic.
func Assess(f dto.CreditFile) Assessment {
	result := CalculateScore(f)
	blocking := CheckBlocking(f)

	return Assessment{
		Score:           result.Score,
		Band:            ScoreBand(result.Score),
		Details:         result.Details,
		RiskFactors:     result.Details.RiskFactors(),
		Blocking:        blocking,
		Strengths:       GenerateStrengths(f),
		Weaknesses:      GenerateWeaknesses(f),
		Recommendations: GenerateRecommendations(f),
		Opinion:         opinion(f.Status, blocking),
	}
}

// Apply returns a copy of f with the derived fields filled in. f itself is
// left untouched.
func (a Assessment) Apply(f dto.CreditFile) dto.CreditFile {
	out := f
	out.RiskRecord.Incidents = append([]dto.RiskIncident(nil), f.RiskRecord.Incidents...)
	out.Score = a.Score
	out.RiskFactors = append([]dto.RiskFactor(nil), a.RiskFactors...)
	out.Strengths = append([]string(nil), a.Strengths...)
	out.Weaknesses = append([]string(nil), a.Weaknesses...)
	out.Recommendations = append([]string(nil), a.Recommendations...)
	out.BlockingReasons = append([]string(nil), a.Blocking.Reasons...)
	return out
}

// ScoreBand maps a score onto the gauge segments: below 25, below 75, and
// the rest.
func ScoreBand(score int) Band {
	switch {
	case score < 25:
		return BandLow
	case score < MinimumScore:
		return BandMedium
	default:
		return BandHigh
	}
}

// opinion: a simulation that passes every rule still awaits a real review.
func opinion(status dto.FileStatus, blocking Blocking) Opinion {
	switch {
	case blocking.Blocked:
		return OpinionUnfavorable
	case status == dto.FileStatusSimulation:
		return OpinionPending
	default:
		return OpinionFavorable
	}
}

package detector

// ClassifyRisk maps a boycott risk score onto an ordinal level. The bands
// are exhaustive, non-overlapping, and inclusive on their lower edge:
// [0,low) NONE, [low,medium) LOW, [medium,high) MEDIUM, [high,1] HIGH.
func ClassifyRisk(risk, low, medium, high float64) RiskLevel {
	switch {
	case risk < low:
		return RiskNone
	case risk < medium:
		return RiskLow
	case risk < high:
		return RiskMedium
	default:
		return RiskHigh
	}
}

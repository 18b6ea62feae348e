package detector

import "math"

// ComputeSignals derives the normalized risk signals from the parsed,
// flagged messages and combines them into a single boycott risk score.
//
// keyword_ratio is the fraction of non-system messages that are
// boycott-related; sender_concentration is the share of non-system messages
// contributed by the single most active sender. The final score is a
// weighted sum of the two, clamped into [0,1], which keeps it monotonically
// non-decreasing in each signal. Zero messages yield all-zero signals, never
// NaN.
func ComputeSignals(messages []Message, keywordWeight, concentrationWeight float64) RiskSignals {
	var total, boycott, maxSender int
	perSender := make(map[string]int)

	for _, msg := range messages {
		if msg.IsSystem {
			continue
		}
		total++
		if msg.BoycottRelated {
			boycott++
		}
		perSender[msg.Sender]++
		if perSender[msg.Sender] > maxSender {
			maxSender = perSender[msg.Sender]
		}
	}

	if total == 0 {
		return RiskSignals{}
	}

	keywordRatio := float64(boycott) / float64(total)
	concentration := float64(maxSender) / float64(total)
	risk := clamp01(keywordWeight*keywordRatio + concentrationWeight*concentration)

	return RiskSignals{
		BoycottRisk:         round3(risk),
		KeywordRatio:        round3(keywordRatio),
		SenderConcentration: round3(concentration),
		TotalMessages:       total,
		BoycottMessages:     boycott,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

package detector

import "unicode/utf8"

// AggregateStats folds the parsed messages into per-sender counters in a
// single pass. System messages are skipped entirely. Senders are keyed by
// exact string equality; no case folding or trimming beyond what the parser
// already strips.
func AggregateStats(messages []Message) map[string]SenderStats {
	stats := make(map[string]SenderStats)

	for _, msg := range messages {
		if msg.IsSystem {
			continue
		}

		entry := stats[msg.Sender]
		entry.Messages++
		entry.Chars += utf8.RuneCountInString(CleanText(msg.Text))
		if msg.BoycottRelated {
			entry.BoycottMessages++
		}
		stats[msg.Sender] = entry
	}

	return stats
}

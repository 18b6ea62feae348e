// Package detector implements the boycott analysis engine: transcript
// parsing, per-sender statistics, risk scoring, risk classification, and
// target detection. The engine is pure and stateless; all configuration is
// passed in at construction time and never mutated.
package detector

import (
	"encoding/json"
	"fmt"
	"time"
)

// Message represents one logical utterance from a chat export. A message may
// span multiple physical lines; continuation lines are folded into Text.
// System notices (membership or settings changes) carry no sender and are
// excluded from per-sender statistics.
type Message struct {
	Sender         string     `json:"sender"`
	Timestamp      *time.Time `json:"timestamp"`
	Text           string     `json:"text"`
	IsSystem       bool       `json:"is_system"`
	BoycottRelated bool       `json:"is_boycott_related"`
}

// SenderStats accumulates per-sender counters over all non-system messages.
type SenderStats struct {
	Messages        int `json:"messages"`
	Chars           int `json:"chars"`
	BoycottMessages int `json:"boycott_msgs"`
}

// RiskSignals carries the normalized inputs and output of the risk scorer.
// KeywordRatio and SenderConcentration are always in [0,1] and are exactly 0
// when TotalMessages is 0.
type RiskSignals struct {
	BoycottRisk         float64 `json:"boycott_risk"`
	KeywordRatio        float64 `json:"keyword_ratio"`
	SenderConcentration float64 `json:"sender_concentration"`
	TotalMessages       int     `json:"total_messages"`
	BoycottMessages     int     `json:"boycott_messages"`
}

// RiskLevel is the ordinal label assigned by the risk classifier.
type RiskLevel string

// Risk levels in ascending order of severity.
const (
	RiskNone   RiskLevel = "NONE"
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Mention is one target candidate and its occurrence count across all
// boycott-related messages. It serializes as a [name, count] pair to match
// the wire contract consumed by the UI.
type Mention struct {
	Name  string
	Count int
}

// MarshalJSON encodes the mention as a two-element [name, count] array.
func (m Mention) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{m.Name, m.Count})
}

// UnmarshalJSON decodes a [name, count] array produced by MarshalJSON.
func (m *Mention) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("mention must be a [name, count] pair: %w", err)
	}
	if err := json.Unmarshal(pair[0], &m.Name); err != nil {
		return fmt.Errorf("invalid mention name: %w", err)
	}
	if err := json.Unmarshal(pair[1], &m.Count); err != nil {
		return fmt.Errorf("invalid mention count: %w", err)
	}
	return nil
}

// AnalysisResult is the full output of one analysis invocation, shaped for
// direct JSON serialization by the HTTP layer.
type AnalysisResult struct {
	Label           string                 `json:"label"`
	RiskSignals     RiskSignals            `json:"risk_signals"`
	PerSenderStats  map[string]SenderStats `json:"per_sender_stats"`
	PotentialTarget *string                `json:"potential_target"`
	TargetMentions  []Mention              `json:"target_mentions"`
}

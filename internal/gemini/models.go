package gemini

// Analysis is the result of the LLM-backed analysis path. It is structurally
// different from the engine's AnalysisResult and the two are reported
// independently, never merged: the model call and the engine may disagree.
type Analysis struct {
	Source           string   `json:"source"`
	BoycottDetected  bool     `json:"boycott_detected"`
	Confidence       float64  `json:"confidence"`
	RiskLevel        string   `json:"risk_level"`
	Reasoning        string   `json:"reasoning"`
	BoycottDetails   []string `json:"boycott_details"`
	PotentialTargets []string `json:"potential_targets"`
	ModelUsed        string   `json:"model_used"`
	Label            string   `json:"label"`
}

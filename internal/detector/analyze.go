package detector

// Analyzer composes the parser, keyword classifier, statistics aggregator,
// risk scorer, risk classifier, and target detector into one pipeline. It
// holds only read-only configuration, so a single Analyzer is safe for
// concurrent use across requests.
type Analyzer struct {
	cfg        Config
	classifier *Classifier
	strategy   TargetStrategy
}

// New builds an Analyzer from the given configuration. The configuration is
// copied and never mutated afterwards.
func New(cfg Config) *Analyzer {
	var strategy TargetStrategy
	switch cfg.TargetStrategy {
	case StrategyFrequency:
		strategy = FrequencyStrategy{MinTokenLength: cfg.MinTokenLength}
	case StrategyVocabulary:
		strategy = NewVocabularyStrategy(cfg.TargetVocabulary)
	default:
		strategy = CapitalizedSpanStrategy{MinLength: cfg.MinTokenLength}
	}

	return &Analyzer{
		cfg:        cfg,
		classifier: NewClassifier(cfg.Keywords),
		strategy:   strategy,
	}
}

// Analyze runs the full pipeline over a raw transcript. It is pure and
// deterministic: identical input and configuration always produce an
// identical result, and malformed input degrades to an empty result rather
// than an error.
func (a *Analyzer) Analyze(raw string) AnalysisResult {
	messages := ParseTranscript(raw)

	for i := range messages {
		if !messages[i].IsSystem {
			messages[i].BoycottRelated = a.classifier.Match(messages[i].Text)
		}
	}

	stats := AggregateStats(messages)
	signals := ComputeSignals(messages, a.cfg.KeywordWeight, a.cfg.ConcentrationWeight)
	level := ClassifyRisk(signals.BoycottRisk, a.cfg.LowThreshold, a.cfg.MediumThreshold, a.cfg.HighThreshold)
	target, mentions := DetectTarget(messages, a.strategy, a.cfg.MaxMentions)

	return AnalysisResult{
		Label:           string(level),
		RiskSignals:     signals,
		PerSenderStats:  stats,
		PotentialTarget: target,
		TargetMentions:  mentions,
	}
}

package detector

// Target detection strategies selectable via Config.TargetStrategy.
const (
	StrategyCapitalized = "capitalized"
	StrategyFrequency   = "frequency"
	StrategyVocabulary  = "vocabulary"
)

// DefaultKeywords is the default boycott vocabulary. Matching is
// case-insensitive substring containment, deliberately permissive in favor of
// recall over precision; the list covers Hebrew and English exports.
var DefaultKeywords = []string{
	"מחרימים",
	"חרם",
	"לא לדבר איתו",
	"לא לדבר איתה",
	"אל תענו לו",
	"אל תענו לה",
	"לא להזמין אותו",
	"לא להזמין אותה",
	"boycott",
	"stop talking to",
	"don't invite",
}

// Config holds the immutable tuning knobs of the analysis engine. It is
// loaded once per process and shared read-only across invocations.
type Config struct {
	// Keywords is the boycott vocabulary used by the keyword classifier.
	Keywords []string `mapstructure:"keywords" validate:"min=1,dive,required"`

	// KeywordWeight and ConcentrationWeight combine the two risk signals
	// into the final score. They are not required to sum to 1; the score
	// is clamped into [0,1].
	KeywordWeight       float64 `mapstructure:"keyword_weight"       validate:"gte=0,lte=1"`
	ConcentrationWeight float64 `mapstructure:"concentration_weight" validate:"gte=0,lte=1"`

	// Classification thresholds. Bands are inclusive on their lower edge:
	// [0,Low) is NONE, [Low,Medium) is LOW, [Medium,High) is MEDIUM and
	// [High,1] is HIGH.
	LowThreshold    float64 `mapstructure:"low_threshold"    validate:"gte=0,lte=1"`
	MediumThreshold float64 `mapstructure:"medium_threshold" validate:"gtefield=LowThreshold,lte=1"`
	HighThreshold   float64 `mapstructure:"high_threshold"   validate:"gtefield=MediumThreshold,lte=1"`

	// TargetStrategy selects how target candidates are extracted from
	// flagged messages. TargetVocabulary is only used by the vocabulary
	// strategy.
	TargetStrategy   string   `mapstructure:"target_strategy" validate:"oneof=capitalized frequency vocabulary"`
	TargetVocabulary []string `mapstructure:"target_vocabulary"`

	// MinTokenLength filters out short tokens (in runes) during candidate
	// extraction. MaxMentions caps the length of the ranked mention list.
	MinTokenLength int `mapstructure:"min_token_length" validate:"min=1"`
	MaxMentions    int `mapstructure:"max_mentions"     validate:"min=1"`
}

// DefaultConfig returns the engine defaults: scoring weights 0.7/0.3,
// thresholds 0.25/0.50/0.75, capitalized-span target detection.
func DefaultConfig() Config {
	return Config{
		Keywords:            DefaultKeywords,
		KeywordWeight:       0.7,
		ConcentrationWeight: 0.3,
		LowThreshold:        0.25,
		MediumThreshold:     0.5,
		HighThreshold:       0.75,
		TargetStrategy:      StrategyCapitalized,
		MinTokenLength:      3,
		MaxMentions:         10,
	}
}

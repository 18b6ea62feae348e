package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/whatsafe/whatsafe/internal/detector"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("server.addr", ":8001")
	v.SetDefault("server.max_body_bytes", int64(4<<20))
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	engine := detector.DefaultConfig()
	v.SetDefault("detector.keywords", engine.Keywords)
	v.SetDefault("detector.keyword_weight", engine.KeywordWeight)
	v.SetDefault("detector.concentration_weight", engine.ConcentrationWeight)
	v.SetDefault("detector.low_threshold", engine.LowThreshold)
	v.SetDefault("detector.medium_threshold", engine.MediumThreshold)
	v.SetDefault("detector.high_threshold", engine.HighThreshold)
	v.SetDefault("detector.target_strategy", engine.TargetStrategy)
	v.SetDefault("detector.target_vocabulary", engine.TargetVocabulary)
	v.SetDefault("detector.min_token_length", engine.MinTokenLength)
	v.SetDefault("detector.max_mentions", engine.MaxMentions)

	// The empty default keeps the key known to viper so the
	// WHATSAFE_GEMINI_API_KEY environment override resolves; AutomaticEnv
	// only consults the environment for keys it has seen.
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model_name", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", float32(0.2))
	v.SetDefault("gemini.timeout", 2*time.Minute)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 5)
}

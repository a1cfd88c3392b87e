package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.SearchRateLimit < 0 {
		return fmt.Errorf("server: search_rate_limit must be >= 0 (got %d)", c.Server.SearchRateLimit)
	}

	if err := c.Match.validate(); err != nil {
		return fmt.Errorf("match: %w", err)
	}

	if c.Feedback.RatingWindow < 0 {
		return fmt.Errorf("feedback: rating_window must be >= 0 (got %d)", c.Feedback.RatingWindow)
	}

	return nil
}

func (m *MatchConfig) validate() error {
	m.SourceLanguage = strings.ToLower(strings.TrimSpace(m.SourceLanguage))
	m.TargetLanguage = strings.ToLower(strings.TrimSpace(m.TargetLanguage))
	if m.SourceLanguage == "" || m.TargetLanguage == "" {
		return fmt.Errorf("source_language and target_language are required")
	}
	if m.DefaultThreshold < 0 || m.DefaultThreshold > 100 {
		return fmt.Errorf("default_threshold must be in [0,100] (got %d)", m.DefaultThreshold)
	}
	if m.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be >= 1 (got %d)", m.DefaultLimit)
	}
	if m.MaxLimit < m.DefaultLimit {
		return fmt.Errorf("max_limit must be >= default_limit (got %d < %d)", m.MaxLimit, m.DefaultLimit)
	}
	for name, boost := range map[string]int{
		"event_boost":      m.EventBoost,
		"topic_boost":      m.TopicBoost,
		"translator_boost": m.TranslatorBoost,
	} {
		if boost < 0 || boost > 100 {
			return fmt.Errorf("%s must be in [0,100] (got %d)", name, boost)
		}
	}
	if m.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be >= 1 (got %d)", m.MaxCandidates)
	}
	if m.MaxSourceLength < 1 {
		return fmt.Errorf("max_source_length must be >= 1 (got %d)", m.MaxSourceLength)
	}
	if m.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", m.Workers)
	}
	return nil
}

// Package llm provides the text-generation client abstraction and its
// Gemini implementation.
package llm

// ModelTier selects a model by the kind of work a call does.
type ModelTier string

const (
	// TierSummary is for the skills-analysis call.
	TierSummary ModelTier = "summary"
	// TierDraft is for resume-drafting calls.
	TierDraft ModelTier = "draft"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierSummary: "gemini-2.5-flash-lite",
			TierDraft:   "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the draft
// model when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierDraft]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the Config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	updated := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		updated.Models[k] = v
	}
	updated.Models[tier] = model
	return updated
}

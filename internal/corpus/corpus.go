// Package corpus provides the reference-resume corpus used to retrieve a
// stylistic exemplar for generation prompts.
package corpus

import (
	"context"
	"fmt"

	"github.com/0xsashank/magicresume/internal/embedding"
	"github.com/0xsashank/magicresume/internal/ranking"
)

// Tone is a stylistic mode for a generated resume variant.
type Tone string

// The fixed set of supported tones. Output always follows this order.
const (
	ToneProfessional Tone = "professional"
	ToneAchievement  Tone = "achievement-oriented"
	ToneCreative     Tone = "creative"
)

// Tones returns the fixed tone iteration order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneAchievement, ToneCreative}
}

// ParseTone validates a tone string.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneProfessional, ToneAchievement, ToneCreative:
		return Tone(s), nil
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

// ExemplarResume is one reference resume in the corpus.
type ExemplarResume struct {
	Content string `json:"content"`
	Tone    Tone   `json:"tone"`
}

// Store is the data-access capability backing the corpus. Implementations
// are read-only after construction and safe for concurrent use.
type Store interface {
	// AllEntries returns every corpus entry in stable order.
	AllEntries(ctx context.Context) ([]ExemplarResume, error)
}

// Corpus retrieves exemplars by semantic similarity over a Store.
type Corpus struct {
	store    Store
	embedder embedding.Embedder
}

// New creates a Corpus over the given store and embedder.
func New(store Store, embedder embedding.Embedder) *Corpus {
	return &Corpus{store: store, embedder: embedder}
}

// AllEntries exposes the backing store's entries.
func (c *Corpus) AllEntries(ctx context.Context) ([]ExemplarResume, error) {
	return c.store.AllEntries(ctx)
}

// BestMatch returns the single corpus entry whose content is most similar
// to the job description vector. The first entry wins ties.
func (c *Corpus) BestMatch(ctx context.Context, jobVec []float32) (ExemplarResume, error) {
	entries, err := c.store.AllEntries(ctx)
	if err != nil {
		return ExemplarResume{}, fmt.Errorf("failed to load corpus entries: %w", err)
	}
	if len(entries) == 0 {
		return ExemplarResume{}, &EmptyCorpusError{}
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Content
	}

	vectors, err := c.embedder.Embed(ctx, texts)
	if err != nil {
		return ExemplarResume{}, fmt.Errorf("failed to embed corpus entries: %w", err)
	}

	ranked, err := ranking.Rank(jobVec, vectors)
	if err != nil {
		return ExemplarResume{}, fmt.Errorf("failed to rank corpus entries: %w", err)
	}

	return entries[ranked[0].Index], nil
}

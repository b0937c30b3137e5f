package corpus

import "context"

// MemoryStore is an in-memory Store. Entries are fixed at construction.
type MemoryStore struct {
	entries []ExemplarResume
}

// NewMemoryStore creates a store over a fixed entry list.
func NewMemoryStore(entries []ExemplarResume) *MemoryStore {
	copied := make([]ExemplarResume, len(entries))
	copy(copied, entries)
	return &MemoryStore{entries: copied}
}

// SeedStore returns the bundled reference corpus: one exemplar per tone.
func SeedStore() *MemoryStore {
	return NewMemoryStore([]ExemplarResume{
		{
			Content: "Experienced software engineer with expertise in Python and machine learning.",
			Tone:    ToneProfessional,
		},
		{
			Content: "Creative problem-solver who increased team productivity by 30% through innovative solutions.",
			Tone:    ToneAchievement,
		},
		{
			Content: "Passionate coder turning caffeine into code since 2010.",
			Tone:    ToneCreative,
		},
	})
}

// AllEntries returns the entries in construction order.
func (s *MemoryStore) AllEntries(_ context.Context) ([]ExemplarResume, error) {
	entries := make([]ExemplarResume, len(s.entries))
	copy(entries, s.entries)
	return entries, nil
}

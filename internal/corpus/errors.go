package corpus

// EmptyCorpusError indicates retrieval ran against a corpus with no entries.
// The bundled seed corpus is never empty, so this points at a broken
// deployment or store and is treated as fatal.
type EmptyCorpusError struct{}

func (e *EmptyCorpusError) Error() string {
	return "exemplar corpus is empty"
}

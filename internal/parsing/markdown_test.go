package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `
Jane Doe
WORK EXPERIENCE
Senior Engineer:
Built data pipelines in Go.
Led a team of four.
EDUCATION
State University
BSc Computer Science
SKILLS
Go, Python, SQL
`

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleResume)
	require.Len(t, sections, 3)

	assert.Equal(t, "WORK EXPERIENCE", sections[0].Title)
	assert.Equal(t, []string{"Senior Engineer:", "Built data pipelines in Go.", "Led a team of four."}, sections[0].Lines)
	assert.Equal(t, "EDUCATION", sections[1].Title)
	assert.Equal(t, "SKILLS", sections[2].Title)
}

func TestSplitSections_LinesBeforeFirstHeaderDropped(t *testing.T) {
	sections := SplitSections("Jane Doe\njane@example.com\nSUMMARY\nEngineer.")
	require.Len(t, sections, 1)
	assert.Equal(t, "SUMMARY", sections[0].Title)
	assert.Equal(t, []string{"Engineer."}, sections[0].Lines)
}

func TestSplitSections_NoHeaders(t *testing.T) {
	assert.Empty(t, SplitSections("just some\nlowercase text"))
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(SplitSections(sampleResume))

	assert.Contains(t, md, "# WORK EXPERIENCE\n\n")
	assert.Contains(t, md, "## Senior Engineer:\n\n")
	assert.Contains(t, md, "Built data pipelines in Go.\n")
	assert.Contains(t, md, "# EDUCATION\n\n")
	// "State University" is Title Case and becomes a subsection header.
	assert.Contains(t, md, "## State University\n\n")
	// Mixed-case body lines stay body.
	assert.Contains(t, md, "BSc Computer Science\n")
	assert.NotContains(t, md, "## BSc")
}

func TestConvertFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "resume.txt")
	out := filepath.Join(dir, "resume.md")
	require.NoError(t, os.WriteFile(in, []byte(sampleResume), 0644))

	require.NoError(t, ConvertFile(in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# WORK EXPERIENCE")
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := ConvertFile(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.md"))
	assert.Error(t, err)
}

package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xsashank/magicresume/internal/corpus"
)

func TestBuildSkillsPrompt(t *testing.T) {
	jd := "We need a Go engineer with PostgreSQL experience."
	prompt := BuildSkillsPrompt(jd)

	assert.Contains(t, prompt, jd)
	assert.Contains(t, prompt, "up to 7 skills")
	assert.Contains(t, prompt, "Technical, Soft, or Domain-Specific")
	assert.Contains(t, prompt, "mandatory or preferred")
	assert.Contains(t, prompt, "5 most critical")
	assert.Contains(t, prompt, "avoiding any assumptions or inferences")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildVariantPrompt_PointsInGivenOrder(t *testing.T) {
	points := []string{"Led a team of five", "Shipped a billing system", "Cut latency in half"}
	exemplar := corpus.ExemplarResume{Content: "Example resume body.", Tone: corpus.ToneProfessional}

	prompt := BuildVariantPrompt(points, "A job.", exemplar, corpus.ToneProfessional)

	var positions []int
	for _, point := range points {
		idx := strings.Index(prompt, "- "+point)
		require.GreaterOrEqual(t, idx, 0, "point %q missing", point)
		positions = append(positions, idx)
	}
	for i := 1; i < len(positions); i++ {
		assert.Greater(t, positions[i], positions[i-1], "points out of order")
	}
	assert.Contains(t, prompt, "Example resume body.")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildVariantPrompt_RequestedToneLabelsExemplar(t *testing.T) {
	// The exemplar carries a different tone than the variant being
	// requested; the instruction must use the requested tone.
	exemplar := corpus.ExemplarResume{Content: "Calm and formal.", Tone: corpus.ToneProfessional}

	prompt := BuildVariantPrompt([]string{"a"}, "jd", exemplar, corpus.ToneCreative)

	assert.Contains(t, prompt, "Example Resume in creative tone:")
	assert.Contains(t, prompt, "a concise, creative-style resume")
	assert.NotContains(t, prompt, "professional tone")
}

func TestSystemInstructions(t *testing.T) {
	assert.Equal(t, "You are an expert in job analysis and resume writing.", SkillsSystemInstruction())
	assert.Equal(t, "You are an expert resume writer.", VariantSystemInstruction())
}

func TestFormat(t *testing.T) {
	out := Format("hello {{.Name}}, {{.Name}}!", map[string]string{"Name": "world"})
	assert.Equal(t, "hello world, world!", out)
}

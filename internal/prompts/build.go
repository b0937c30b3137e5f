package prompts

import (
	"strings"

	"github.com/0xsashank/magicresume/internal/corpus"
)

const tailoringFile = "tailoring.json"

// SkillsSystemInstruction is the system role for the skills-analysis call.
func SkillsSystemInstruction() string {
	return MustGet(tailoringFile, "system_skills")
}

// VariantSystemInstruction is the system role for resume-drafting calls.
func VariantSystemInstruction() string {
	return MustGet(tailoringFile, "system_variant")
}

// BuildSkillsPrompt assembles the skills-extraction prompt. The instruction
// constrains the analysis to information literally present in the job
// description.
func BuildSkillsPrompt(jobDescription string) string {
	return Format(MustGet(tailoringFile, "skills_analysis"), map[string]string{
		"JobDescription": jobDescription,
	})
}

// BuildVariantPrompt assembles a tone-conditioned drafting prompt from the
// ranked points (in given order), the job description, and the exemplar.
// The tone label in the instruction is the requested tone, not the
// exemplar's own tone: relevance selection and tone selection are
// independent axes.
func BuildVariantPrompt(points []string, jobDescription string, exemplar corpus.ExemplarResume, tone corpus.Tone) string {
	var bullets strings.Builder
	for i, point := range points {
		if i > 0 {
			bullets.WriteString("\n")
		}
		bullets.WriteString("- ")
		bullets.WriteString(point)
	}

	return Format(MustGet(tailoringFile, "tone_variant"), map[string]string{
		"JobDescription": jobDescription,
		"Points":         bullets.String(),
		"Exemplar":       exemplar.Content,
		"Tone":           string(tone),
	})
}

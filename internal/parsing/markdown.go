// Package parsing converts extracted resume text into a Markdown document
// using line-shape heuristics for section structure.
package parsing

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Section is a run of lines under one detected section header.
type Section struct {
	Title string
	Lines []string
}

var (
	// sectionHeaderRe matches all-uppercase lines such as "WORK EXPERIENCE".
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
	// subsectionRe matches Title Case lines with an optional trailing colon,
	// such as "Senior Engineer:" or "Education".
	subsectionRe = regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+)*:?$`)
)

func isSectionHeader(line string) bool {
	return sectionHeaderRe.MatchString(line) || line == strings.ToUpper(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// SplitSections groups lines into sections. A line is a section header when
// it is entirely uppercase; everything until the next header belongs to the
// current section. Lines before the first header are dropped, matching the
// converter's one-shot batch behavior.
func SplitSections(text string) []Section {
	var sections []Section
	current := Section{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isSectionHeader(line) {
			if current.Title != "" {
				sections = append(sections, current)
			}
			current = Section{Title: line}
			continue
		}
		current.Lines = append(current.Lines, line)
	}

	if current.Title != "" {
		sections = append(sections, current)
	}

	return sections
}

// ToMarkdown renders sections as Markdown: section titles become level-1
// headers, Title Case lines become level-2 headers, everything else body.
func ToMarkdown(sections []Section) string {
	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("# %s\n\n", section.Title))
		for _, line := range section.Lines {
			if subsectionRe.MatchString(line) {
				sb.WriteString(fmt.Sprintf("## %s\n\n", line))
			} else {
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ConvertFile reads a resume document (PDF or plain text, by extension),
// splits it into sections, and writes the Markdown rendition to outputPath.
func ConvertFile(inputPath, outputPath string) error {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".pdf":
		text, err = ExtractPDFText(inputPath)
		if err != nil {
			return fmt.Errorf("failed to extract text from %s: %w", inputPath, err)
		}
	default:
		data, readErr := os.ReadFile(inputPath)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", inputPath, readErr)
		}
		text = string(data)
	}

	markdown := ToMarkdown(SplitSections(text))

	if err := os.WriteFile(outputPath, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

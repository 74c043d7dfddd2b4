// ABOUTME: Splits free-text AI responses into titled sections.
// ABOUTME: Recognizes headers like REASONING: or WORKOUT PLAN: anywhere in the text.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Section is one titled block of an AI response.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// FallbackTitle names the single section returned when no header matches.
const FallbackTitle = "Analysis"

type header struct {
	pattern *regexp.Regexp
	title   string
}

var headers = []header{
	{regexp.MustCompile(`(?i)REASONING:`), "Reasoning"},
	{regexp.MustCompile(`(?i)DECISION:`), "Decision"},
	{regexp.MustCompile(`(?i)EXPLANATION:`), "Explanation"},
	{regexp.MustCompile(`(?i)CONCERNS:`), "Concerns"},
	{regexp.MustCompile(`(?i)RECOMMENDATIONS:`), "Recommendations"},
	{regexp.MustCompile(`(?i)WORKOUT PLAN:`), "Workout Plan"},
	{regexp.MustCompile(`(?i)REASONING FOR EACH EXERCISE:`), "Exercise Reasoning"},
	{regexp.MustCompile(`(?i)MEDICAL SAFETY CHECKS:`), "Medical Safety Checks"},
	{regexp.MustCompile(`(?i)RECOVERY ALIGNMENT:`), "Recovery Alignment"},
	{regexp.MustCompile(`(?i)WARM-UP`), "Warm-Up"},
	{regexp.MustCompile(`(?i)MAIN WORKOUT:`), "Main Workout"},
	{regexp.MustCompile(`(?i)COOL-DOWN`), "Cool-Down"},
}

type match struct {
	start, end int
	title      string
}

// Parse returns the sections of text in the order their headers appear.
// Content runs from the end of one header to the start of the next and is
// trimmed; sections with no content are dropped. Text without any header
// comes back as a single "Analysis" section.
func Parse(text string) []Section {
	var found []match
	for _, h := range headers {
		for _, loc := range h.pattern.FindAllStringIndex(text, -1) {
			found = append(found, match{start: loc[0], end: loc[1], title: h.title})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	var out []Section
	for i, m := range found {
		end := len(text)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		if end < m.end {
			continue
		}
		// Headers without a colon (WARM-UP, COOL-DOWN) are often written with one.
		content := strings.TrimSpace(strings.TrimPrefix(text[m.end:end], ":"))
		if content == "" {
			continue
		}
		out = append(out, Section{Title: m.title, Content: content})
	}

	if len(out) == 0 {
		return []Section{{Title: FallbackTitle, Content: strings.TrimSpace(text)}}
	}
	return out
}

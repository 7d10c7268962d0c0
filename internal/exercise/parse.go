package exercise

import (
	"encoding/json"
	"regexp"
	"strings"
)

// tagPatterns caches compiled per-tag regexps. Only a handful of tags
// exist, so the map is filled at init.
var tagPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, tag := range []string{"exercise", "hints", "mistakes", "stylistic_errors", "recommendations"} {
		tagPatterns[tag] = regexp.MustCompile(`(?is)<` + tag + `>(.*?)</` + tag + `>`)
	}
}

// ExtractTag returns the trimmed content of the first <tag>...</tag>
// pair in text, or "" when the tag is absent or holds only the
// literal placeholder "None.".
func ExtractTag(text, tag string) string {
	re, ok := tagPatterns[tag]
	if !ok {
		re = regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(tag) + `>(.*?)</` + regexp.QuoteMeta(tag) + `>`)
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	content := strings.TrimSpace(m[1])
	if strings.EqualFold(content, "none.") || strings.EqualFold(content, "none") {
		return ""
	}
	return content
}

// exerciseOutput is the structured generation response.
type exerciseOutput struct {
	Exercise string `json:"exercise"`
	Hints    string `json:"hints"`
}

// parseExercise extracts exercise text and hints from a generation
// response. Structured JSON is tried first, then the XML tag format,
// then the raw text is taken as the exercise itself.
func parseExercise(content []byte) *Exercise {
	var out exerciseOutput
	if err := json.Unmarshal(content, &out); err == nil && out.Exercise != "" {
		return &Exercise{Text: strings.TrimSpace(out.Exercise), Hints: cleanSection(out.Hints)}
	}

	text := string(content)
	if ex := ExtractTag(text, "exercise"); ex != "" {
		return &Exercise{Text: ex, Hints: ExtractTag(text, "hints")}
	}

	return &Exercise{Text: strings.TrimSpace(text)}
}

// hintsOutput is the structured custom-hints response.
type hintsOutput struct {
	Hints string `json:"hints"`
}

func parseHints(content []byte) string {
	var out hintsOutput
	if err := json.Unmarshal(content, &out); err == nil && out.Hints != "" {
		return cleanSection(out.Hints)
	}

	text := string(content)
	if h := ExtractTag(text, "hints"); h != "" {
		return h
	}
	return cleanSection(text)
}

// feedbackOutput is the structured writing-check response.
type feedbackOutput struct {
	Mistakes        string `json:"mistakes"`
	StyleErrors     string `json:"stylistic_errors"`
	Recommendations string `json:"recommendations"`
}

// parseFeedback extracts the three feedback sections from a check
// response. Structured JSON is tried first, then the XML tag format.
// A response matching neither is kept whole under Recommendations,
// so the learner still sees whatever the model said.
func parseFeedback(content []byte) Feedback {
	var out feedbackOutput
	if err := json.Unmarshal(content, &out); err == nil {
		if out.Mistakes != "" || out.StyleErrors != "" || out.Recommendations != "" {
			return Feedback{
				Mistakes:        cleanSection(out.Mistakes),
				StyleErrors:     cleanSection(out.StyleErrors),
				Recommendations: cleanSection(out.Recommendations),
			}
		}
	}

	text := string(content)
	fb := Feedback{
		Mistakes:        ExtractTag(text, "mistakes"),
		StyleErrors:     ExtractTag(text, "stylistic_errors"),
		Recommendations: ExtractTag(text, "recommendations"),
	}
	if fb.Mistakes == "" && fb.StyleErrors == "" && fb.Recommendations == "" {
		fb.Recommendations = cleanSection(text)
	}
	return fb
}

// cleanSection trims a section and maps the literal placeholder
// "None." to empty.
func cleanSection(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none.") || strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

package engine

import (
	"regexp"
	"strings"
)

// OutputParser extracts structured features from a model reply: suggested
// questions, project references, code snippets, and classified links. The
// reply text itself is never rewritten.
type OutputParser struct{}

// NewOutputParser creates a parser.
func NewOutputParser() *OutputParser {
	return &OutputParser{}
}

var (
	suggestedRe = regexp.MustCompile(`SUGGESTED_QUESTIONS:\s*(.*)`)
	codeBlockRe = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)```")
	linkRe      = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// projectMentionKeywords drive the project reference scan.
var projectMentionKeywords = []string{"rakhimart", "event manager", "gitiq", "portfolio", "nit silchar"}

// Parse extracts structured fields from a reply.
func (p *OutputParser) Parse(message string) Response {
	resp := Response{Message: message}
	lower := strings.ToLower(message)

	// `.` stops at newlines, so the capture is the rest of the marker line.
	if m := suggestedRe.FindStringSubmatch(message); m != nil {
		for _, q := range strings.Split(m[1], ",") {
			if q = strings.TrimSpace(q); q != "" {
				resp.SuggestedQuestions = append(resp.SuggestedQuestions, q)
			}
		}
	}

	for _, kw := range projectMentionKeywords {
		if strings.Contains(lower, kw) {
			resp.ProjectReferences = append(resp.ProjectReferences, kw)
		}
	}

	for _, m := range codeBlockRe.FindAllStringSubmatch(message, -1) {
		lang := m[1]
		if lang == "" {
			lang = "text"
		}
		resp.CodeSnippets = append(resp.CodeSnippets, CodeSnippet{
			Language:    lang,
			Code:        m[2],
			Description: "Code example",
		})
	}

	for _, m := range linkRe.FindAllStringSubmatch(message, -1) {
		resp.Links = append(resp.Links, Link{
			Text: m[1],
			URL:  m[2],
			Type: classifyLink(m[2]),
		})
	}

	return resp
}

// classifyLink buckets a URL for frontend rendering.
func classifyLink(url string) string {
	switch {
	case strings.Contains(url, "github.com"):
		return LinkTypeGitHub
	case strings.Contains(url, "vercel.app"), strings.Contains(url, "demo"):
		return LinkTypeDemo
	default:
		return LinkTypeExternal
	}
}

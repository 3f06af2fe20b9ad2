package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestedQuestions(t *testing.T) {
	p := NewOutputParser()

	resp := p.Parse("GitIQ is fast.\nSUGGESTED_QUESTIONS: How fast?, What models?, Can I try it?\nThanks!")
	assert.Equal(t, []string{"How fast?", "What models?", "Can I try it?"}, resp.SuggestedQuestions)

	resp = p.Parse("No marker here.")
	assert.Nil(t, resp.SuggestedQuestions)
}

func TestParseProjectReferences(t *testing.T) {
	p := NewOutputParser()

	resp := p.Parse("The Event Manager and GitIQ both showcase AI orchestration.")
	assert.Equal(t, []string{"event manager", "gitiq"}, resp.ProjectReferences)
}

func TestParseCodeSnippets(t *testing.T) {
	p := NewOutputParser()

	resp := p.Parse("Example:\n```go\nfmt.Println(\"hi\")\n```\nand untyped:\n```\nplain\n```\n")
	require.Len(t, resp.CodeSnippets, 2)
	assert.Equal(t, "go", resp.CodeSnippets[0].Language)
	assert.Equal(t, "fmt.Println(\"hi\")\n", resp.CodeSnippets[0].Code)
	assert.Equal(t, "text", resp.CodeSnippets[1].Language)
	assert.Equal(t, "plain\n", resp.CodeSnippets[1].Code)
}

func TestParseLinks(t *testing.T) {
	p := NewOutputParser()

	resp := p.Parse("See [GitIQ](https://github.com/DhrubaAgarwalla/GitIQ), " +
		"[live](https://gitiq.vercel.app/) and [NIT Silchar](https://www.nits.ac.in/).")

	require.Len(t, resp.Links, 3)
	assert.Equal(t, Link{Text: "GitIQ", URL: "https://github.com/DhrubaAgarwalla/GitIQ", Type: LinkTypeGitHub}, resp.Links[0])
	assert.Equal(t, Link{Text: "live", URL: "https://gitiq.vercel.app/", Type: LinkTypeDemo}, resp.Links[1])
	assert.Equal(t, Link{Text: "NIT Silchar", URL: "https://www.nits.ac.in/", Type: LinkTypeExternal}, resp.Links[2])
}

func TestClassifyLink(t *testing.T) {
	assert.Equal(t, LinkTypeGitHub, classifyLink("https://github.com/x/y"))
	assert.Equal(t, LinkTypeDemo, classifyLink("https://app.vercel.app/"))
	assert.Equal(t, LinkTypeDemo, classifyLink("https://example.com/demo"))
	assert.Equal(t, LinkTypeExternal, classifyLink("https://example.com/"))
}

func TestParseKeepsMessageVerbatim(t *testing.T) {
	p := NewOutputParser()

	msg := "Answer with [link](https://github.com/x) and\nSUGGESTED_QUESTIONS: a, b"
	resp := p.Parse(msg)
	assert.Equal(t, msg, resp.Message)
}

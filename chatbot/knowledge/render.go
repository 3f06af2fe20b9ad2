package knowledge

import (
	"fmt"
	"strings"
)

// Rendering produces the context blocks handed to the prompt builder. The
// layout is plain text with uppercase headers and bullet lists, which the
// hosted models follow reliably.

func bullets(items []string) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "• " + it
	}
	return strings.Join(out, "\n")
}

func numbered(items []string) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = fmt.Sprintf("%d. %s", i+1, it)
	}
	return strings.Join(out, "\n")
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

func renderProfile(p Profile) string {
	return fmt.Sprintf(`
PERSONAL PROFILE:
Name: %s
Title: %s
Education: %s in %s at %s (%s)
Contact: %s, WhatsApp: %s
Portfolio: %s

SPECIALIZATION:
%s

PHILOSOPHY:
%s

ACHIEVEMENTS:
%s
`,
		p.Name, p.Title,
		p.Education.Degree, p.Education.Branch, p.Education.Institution, p.Education.Years,
		p.Contact.Email, p.Contact.WhatsApp, p.Contact.Portfolio,
		bullets(p.Specialization), p.Philosophy, bullets(p.Achievements))
}

func renderProject(p Project) string {
	pairs := make([]string, len(p.Challenges))
	for i, c := range p.Challenges {
		sol := "Addressed through AI collaboration"
		if i < len(p.Solutions) {
			sol = p.Solutions[i]
		}
		pairs[i] = fmt.Sprintf("Challenge: %s\nSolution: %s", c, sol)
	}

	demo := ""
	if p.DemoURL != "" {
		demo = "Demo: " + p.DemoURL + "\n"
	}

	return fmt.Sprintf(`
PROJECT: %s
Description: %s
Lines of Code: %d
Technologies: %s

KEY FEATURES:
%s

HIGHLIGHTS:
%s

DEVELOPMENT APPROACH: %s

CHALLENGES & SOLUTIONS:
%s

IMPACT: %s
Status: %s
GitHub: %s
%s`,
		p.Name, p.DetailedDescription, p.LinesOfCode, strings.Join(p.Technologies, ", "),
		bullets(p.Features), bullets(p.Highlights), p.DevelopmentApproach,
		strings.Join(pairs, "\n"), p.Impact, p.Status, p.GitHubURL, demo)
}

func renderExpertise(groups []Expertise) string {
	var sb strings.Builder
	sb.WriteString("\nTECHNICAL EXPERTISE:\n")
	for _, e := range groups {
		fmt.Fprintf(&sb, "\n%s (%s):\nSkills: %s\nDescription: %s\n",
			e.Category, e.Proficiency, strings.Join(e.Skills, ", "), e.Description)
	}
	return sb.String()
}

func renderMethodology(m Methodology) string {
	return fmt.Sprintf(`
AI-ORCHESTRATED DEVELOPMENT:
Definition: %s

Approach: %s

Benefits:
%s

Process:
%s

Tools Used:
%s

Examples:
%s
`,
		m.Definition, m.Approach, bullets(m.Benefits), numbered(m.Process),
		bullets(m.Tools), bullets(m.Examples))
}

func renderTooling(p Profile, t Tooling) string {
	name := firstName(p.Name)

	capN := func(items []string, n int) []string {
		if len(items) > n {
			return items[:n]
		}
		return items
	}

	return fmt.Sprintf(`
PRIMARY AI DEVELOPMENT TOOL:
%s with %s

ANSWER: %s primarily uses %s, which features %s as the AI model. This is his main AI assistant for all development work.

ABOUT THE TOOL:
%s

WHY %s CHOSE IT:
%s

KEY FEATURES USED:
%s

EXPERIENCE WITH THE TOOL:
%s

PERFORMANCE:
%s

CONTEXT ENGINE CAPABILITIES:
%s
`,
		t.Name, t.PrimaryModel,
		name, t.Name, t.PrimaryModel,
		t.Description,
		strings.ToUpper(name), bullets(t.Advantages),
		bullets(capN(t.KeyFeatures, 8)),
		bullets(t.UsageExperience),
		bullets(capN(t.Performance, 4)),
		bullets(capN(t.ContextEngine, 5)))
}

func renderOverview(b Base) string {
	var projects []string
	for _, p := range b.Projects {
		projects = append(projects, fmt.Sprintf("%s (%d+ lines) - %s", p.Name, p.LinesOfCode, p.Description))
	}

	top := b.Profile.Specialization
	if len(top) > 3 {
		top = top[:3]
	}

	return fmt.Sprintf(`
GENERAL OVERVIEW:
%s is an %s and %s student at %s.

Specializes in building large-scale applications through AI orchestration using %s with %s, with major projects including:
%s

Primary AI Development Tool: %s with %s
Key expertise: %s

Contact: %s
Portfolio: %s
`,
		b.Profile.Name, b.Profile.Title, b.Profile.Education.Branch, b.Profile.Education.Institution,
		b.Tooling.Name, b.Tooling.PrimaryModel,
		bullets(projects),
		b.Tooling.Name, b.Tooling.PrimaryModel,
		strings.Join(top, ", "),
		b.Profile.Contact.Email, b.Profile.Contact.Portfolio)
}

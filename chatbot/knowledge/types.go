// Package knowledge provides the static corpus of facts about the portfolio
// owner and a pure keyword search over it. A Base is an immutable value:
// callers load one at startup (or from an override file) and inject it where
// needed; nothing in this package mutates it afterwards.
package knowledge

// Education describes a degree in progress or completed.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Years       string `json:"years"`
	Branch      string `json:"branch"`
}

// Contact holds the owner's reachable addresses.
type Contact struct {
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsapp"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// Profile is the owner's biographical record.
type Profile struct {
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Education      Education `json:"education"`
	Contact        Contact   `json:"contact"`
	Specialization []string  `json:"specialization"`
	Philosophy     string    `json:"philosophy"`
	Achievements   []string  `json:"achievements"`
}

// Project is one showcased project with its full detail set.
type Project struct {
	Key                 string   `json:"key"` // stable identifier, e.g. "event-manager"
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailed_description"`
	LinesOfCode         int      `json:"lines_of_code"`
	Technologies        []string `json:"technologies"`
	Features            []string `json:"features"`
	Highlights          []string `json:"highlights"`
	DevelopmentApproach string   `json:"development_approach"`
	Challenges          []string `json:"challenges"`
	Solutions           []string `json:"solutions"`
	Impact              string   `json:"impact"`
	GitHubURL           string   `json:"github_url"`
	DemoURL             string   `json:"demo_url,omitempty"`
	Status              string   `json:"status"`
	DevelopmentTime     string   `json:"development_time"`
}

// Expertise groups skills under a named category.
type Expertise struct {
	Category    string   `json:"category"`
	Skills      []string `json:"skills"`
	Proficiency string   `json:"proficiency"` // beginner | intermediate | advanced | expert
	Description string   `json:"description"`
}

// Methodology describes the owner's development methodology.
type Methodology struct {
	Definition string   `json:"definition"`
	Approach   string   `json:"approach"`
	Benefits   []string `json:"benefits"`
	Process    []string `json:"process"`
	Tools      []string `json:"tools"`
	Examples   []string `json:"examples"`
}

// Tooling describes the owner's primary development tool.
type Tooling struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PrimaryModel    string   `json:"primary_model"`
	KeyFeatures     []string `json:"key_features"`
	ContextEngine   []string `json:"context_engine"`
	Performance     []string `json:"performance"`
	UsageExperience []string `json:"usage_experience"`
	Advantages      []string `json:"advantages"`
}

// Base is the complete knowledge corpus.
type Base struct {
	Profile     Profile     `json:"profile"`
	Projects    []Project   `json:"projects"`
	Expertise   []Expertise `json:"expertise"`
	Methodology Methodology `json:"methodology"`
	Tooling     Tooling     `json:"tooling"`
}

// ProjectByKey returns the project with the given key, if any.
func (b Base) ProjectByKey(key string) (Project, bool) {
	for _, p := range b.Projects {
		if p.Key == key {
			return p, true
		}
	}
	return Project{}, false
}

// Package chatbot holds application-wide constants shared by the
// configuration, knowledge, and engine packages.
package chatbot

const (
	DefaultAppName = "portfolio-chat"

	// DefaultBaseURL is the OpenAI-compatible endpoint of the hosted
	// completion API.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel replaced the deprecated llama3-8b-8192.
	DefaultModel = "llama-3.3-70b-versatile"

	DefaultOwnerName  = "Dhruba Kumar Agarwalla"
	DefaultOwnerTitle = "AI-Orchestrated Full-Stack Developer"

	DefaultConfigPath   = "/etc/portfolio-chat"
	DefaultDatabasePath = "./data/portfolio-chat.db"
)

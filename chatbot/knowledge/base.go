package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default returns the built-in corpus. The returned value is independent of
// any previous call; callers may treat it as their own.
func Default() Base {
	return Base{
		Profile: Profile{
			Name:  "Dhruba Kumar Agarwalla",
			Title: "AI-Orchestrated Full-Stack Developer",
			Education: Education{
				Degree:      "Bachelor of Technology (B.Tech)",
				Institution: "National Institute of Technology (NIT) Silchar",
				Years:       "2024-2028",
				Branch:      "Civil Engineering (2nd Year)",
			},
			Contact: Contact{
				Email:     "dhrubagarwala67@gmail.com",
				WhatsApp:  "9395386870",
				GitHub:    "https://github.com/DhrubaAgarwalla",
				Portfolio: "https://portfolio-dhruba.vercel.app/",
			},
			Specialization: []string{
				"AI-Orchestrated Development",
				"Prompt Engineering",
				"Full-Stack Web Development",
				"AI/ML Integration",
				"Automation Systems",
			},
			Philosophy: "Creating large-scale, production-ready applications through strategic AI collaboration and prompt engineering, combining AI/ML with web development to build exceptional user experiences.",
			Achievements: []string{
				"2nd Prize Winner in CSS Hacks Hackathon",
				"Built Event Manager (75,000+ lines) through AI orchestration",
				"Developed GitIQ (40,000+ lines) using AI-driven development",
				"Created advanced portfolio with AI chatbot integration",
			},
		},
		Projects: []Project{
			{
				Key:                 "rakhimart",
				Name:                "RakhiMart",
				Description:         "Production e-commerce platform with payments and multi-partner delivery",
				DetailedDescription: "A production e-commerce platform with Cashfree payment integration, multi-delivery-partner support (Delhivery, Shiprocket, Blue Dart, DTDC), AI-generated product reviews, and real-time order tracking.",
				LinesOfCode:         25000,
				Technologies:        []string{"React", "Node.js", "Cashfree", "Google Generative AI"},
				Features: []string{
					"Cashfree payment gateway integration",
					"Multi-delivery partner dispatch (Delhivery, Shiprocket, Blue Dart, DTDC)",
					"AI-generated product reviews",
					"Real-time order tracking",
				},
				Highlights: []string{
					"Demonstrates production-scale complexity handled through AI orchestration",
					"AI features embedded in a real commercial workflow",
				},
				DevelopmentApproach: "AI-Orchestrated Development using advanced prompt engineering and strategic AI collaboration",
				Challenges:          []string{"Payment gateway reconciliation", "Coordinating multiple delivery partner APIs"},
				Solutions:           []string{"Webhook-driven payment state machine", "Unified dispatch layer over partner APIs"},
				Impact:              "Production e-commerce platform serving real customers",
				GitHubURL:           "https://github.com/DhrubaAgarwalla",
				Status:              "completed",
				DevelopmentTime:     "Built through intensive AI collaboration",
			},
			{
				Key:                 "event-manager",
				Name:                "Event Manager",
				Description:         "Comprehensive event management system for NIT Silchar",
				DetailedDescription: "A full-stack event management platform for NIT Silchar: React 19 frontend with Firebase integration and a Node.js Express backend. Handles event creation, registration, real-time updates, participant management, Google Sheets automation, and QR-code attendance tracking for events with thousands of participants.",
				LinesOfCode:         75000,
				Technologies: []string{
					"React 19", "Vite", "Firebase Realtime Database", "Firebase Authentication",
					"Node.js", "Express.js", "Google APIs (Sheets, Drive, Gmail)", "Nodemailer", "Cloudinary",
				},
				Features: []string{
					"Event creation with custom fields and participation types (Solo/Team/Both)",
					"Real-time registration tracking and analytics",
					"Role-based access (Admin, Club, Participant)",
					"QR code generation with security verification and email delivery",
					"Automated Google Sheets creation with real-time sync",
					"Export to Excel, PDF, and Google Sheets",
				},
				Highlights: []string{
					"Handles 1000+ concurrent users across a full-stack architecture",
					"70% image compression and intelligent caching",
					"Zero downtime during peak registration periods",
					"Built through strategic AI collaboration and prompt engineering",
				},
				DevelopmentApproach: "AI-Orchestrated Development using advanced prompt engineering and strategic AI collaboration",
				Challenges: []string{
					"Handling high concurrent user load across frontend and backend",
					"Google APIs integration with Service Account authentication",
					"QR code system with secure email automation",
				},
				Solutions: []string{
					"Firebase Realtime Database with security rules and a 5-minute cache",
					"Node.js Express backend with Google Service Account OAuth2 flow",
					"jsQR-based scanning with automated Gmail delivery",
				},
				Impact:          "Manages all major events at NIT Silchar with a 70% reduction in registration time",
				GitHubURL:       "https://github.com/DhrubaAgarwalla/NITS-Event-Managment",
				DemoURL:         "https://nits-event-managment.vercel.app/",
				Status:          "completed",
				DevelopmentTime: "Built in 3-4 weeks through intensive AI collaboration",
			},
			{
				Key:                 "gitiq",
				Name:                "GitIQ",
				Description:         "AI-powered GitHub repository commit analysis and categorization tool",
				DetailedDescription: "A Next.js application providing AI-powered insight into GitHub repositories through intelligent commit categorization. Uses multiple AI providers (Groq, Google Gemini) with parallel processing to analyze commit history, contributor patterns, and development activity.",
				LinesOfCode:         40000,
				Technologies:        []string{"Next.js 14", "TypeScript", "Tailwind CSS", "Groq AI", "Google Gemini", "GitHub REST API", "Recharts"},
				Features: []string{
					"AI commit categorization into 19 categories",
					"Multi-AI provider system with 50/50 load balancing and automatic failover",
					"Interactive pie chart and activity timeline visualizations",
					"Contributor analysis with commit counts and line changes",
					"AI-generated repository summaries and README analysis",
				},
				Highlights: []string{
					"Ultra-fast AI commit categorization (~0.12s per commit with Groq)",
					"Built entirely through AI orchestration",
				},
				DevelopmentApproach: "Pure AI-Orchestrated Development with focus on multi-AI integration and data visualization",
				Challenges:          []string{"GitHub API rate limiting and pagination", "Coordinating parallel multi-provider processing"},
				Solutions:           []string{"Intelligent pagination with rate-limit handling", "Unified provider interface with automatic failover"},
				Impact:              "Gives developers AI-powered insight into their repositories with ultra-fast analysis",
				GitHubURL:           "https://github.com/DhrubaAgarwalla/GitIQ",
				DemoURL:             "https://gitiq.vercel.app/",
				Status:              "completed",
				DevelopmentTime:     "Built in less than a week through AI-driven approach",
			},
			{
				Key:                 "portfolio",
				Name:                "Portfolio Website",
				Description:         "Advanced portfolio website with AI chatbot integration",
				DetailedDescription: "A modern, responsive portfolio website with a cyberpunk aesthetic, 3D project card effects, and an AI chatbot powered by a hosted completion API. Conversations persist locally with a 24-hour expiry.",
				LinesOfCode:         15000,
				Technologies:        []string{"React 18", "TypeScript", "Tailwind CSS", "Vite", "Framer Motion", "Groq AI", "Vercel"},
				Features: []string{
					"Interactive AI chatbot with conversation persistence (24-hour expiry)",
					"Context-aware responses with intent analysis",
					"Cyberpunk aesthetic with glassmorphism effects",
					"Real-time GitHub data integration",
					"Suggested questions and follow-up recommendations",
				},
				Highlights: []string{
					"Advanced AI chatbot with a comprehensive knowledge base",
					"Built with $0 budget through AI orchestration",
				},
				DevelopmentApproach: "AI-Orchestrated Development with focus on user experience and AI integration",
				Challenges:          []string{"Chatbot context management", "Conversation persistence and state management"},
				Solutions:           []string{"Context-aware response system with a knowledge base", "Local conversation persistence with expiry"},
				Impact:              "Professional showcase demonstrating AI-orchestrated development",
				GitHubURL:           "https://github.com/DhrubaAgarwalla/stellar-code-lab",
				DemoURL:             "https://portfolio-dhruba.vercel.app/",
				Status:              "completed",
				DevelopmentTime:     "Continuously improved through AI collaboration",
			},
		},
		Expertise: []Expertise{
			{
				Category:    "AI-Orchestrated Development",
				Skills:      []string{"Augment Code IDE Plugin", "Claude Sonnet 4", "Prompt Engineering", "AI Collaboration", "AI-Driven Architecture"},
				Proficiency: "expert",
				Description: "Specialized in creating large-scale applications through strategic AI collaboration and advanced prompt engineering.",
			},
			{
				Category:    "Frontend Development",
				Skills:      []string{"React", "TypeScript", "JavaScript", "Tailwind CSS", "HTML5", "CSS3", "Responsive Design"},
				Proficiency: "advanced",
				Description: "Modern frontend development with a focus on the React ecosystem and interactive user interfaces.",
			},
			{
				Category:    "Backend Development",
				Skills:      []string{"Node.js", "Express", "MongoDB", "API Development", "Authentication", "Database Design"},
				Proficiency: "advanced",
				Description: "Scalable APIs and database architectures with the Node.js ecosystem.",
			},
			{
				Category:    "AI/ML Integration",
				Skills:      []string{"Groq AI", "OpenAI API", "AI Chatbots", "Natural Language Processing"},
				Proficiency: "advanced",
				Description: "Integrating AI services into web applications, particularly chatbots and intelligent interfaces.",
			},
			{
				Category:    "Automation Systems",
				Skills:      []string{"Social Media Automation", "LinkedIn Bots", "YouTube Automation", "Platform Integration"},
				Proficiency: "advanced",
				Description: "Automation systems for social platforms with robust workflows.",
			},
		},
		Methodology: Methodology{
			Definition: "AI-Orchestrated Development is a methodology where complex software systems are built through strategic collaboration with AI, using advanced prompt engineering and AI guidance rather than traditional manual coding.",
			Approach:   "Strategic collaboration with AI systems to design, architect, and implement large-scale applications through intelligent prompting and iterative refinement.",
			Benefits: []string{
				"Rapid development of complex systems",
				"Consistent code quality and architecture",
				"Ability to work across multiple technology stacks",
				"Focus on problem-solving rather than syntax",
			},
			Process: []string{
				"Problem analysis and requirement gathering",
				"AI-assisted architecture design",
				"Strategic prompt engineering for implementation",
				"Iterative development with AI feedback",
				"Testing and optimization through AI collaboration",
			},
			Tools: []string{
				"Augment Code IDE Plugin (primary tool)",
				"Claude Sonnet 4 (primary AI model)",
				"Advanced prompt engineering techniques",
			},
			Examples: []string{
				"Event Manager: 75,000+ lines built through AI orchestration",
				"GitIQ: 40,000+ lines developed using AI-driven approach",
				"Portfolio website with advanced AI chatbot integration",
			},
		},
		Tooling: Tooling{
			Name:         "Augment Code IDE Plugin",
			Description:  "AI software development platform with a proprietary context engine, featuring Claude Sonnet 4 integration for autonomous coding assistance.",
			PrimaryModel: "Claude Sonnet 4 by Anthropic",
			KeyFeatures: []string{
				"Autonomous software agents in IDE and cloud",
				"Proprietary context retrieval engine",
				"Real-time codebase indexing and understanding",
				"Smart apply for one-click code changes",
				"Multi-IDE support (VS Code, JetBrains, Vim, Neovim)",
			},
			ContextEngine: []string{
				"Real-time codebase indexing and analysis",
				"Large codebase understanding and navigation",
				"Context-aware code suggestions and completions",
			},
			Performance: []string{
				"SWE-bench agent score: 70.6%",
				"Valid tool-call rate: 80.0%",
			},
			UsageExperience: []string{
				"Primary AI development tool for all major projects",
				"Used for Event Manager (75,000+ lines) development",
				"Essential for GitIQ (40,000+ lines) creation",
			},
			Advantages: []string{
				"Industry-leading context understanding",
				"Handles larger tasks with better context retention",
				"Seamless integration with the existing development workflow",
			},
		},
	}
}

// FromFile loads a corpus override from a JSON file. The result is a fresh
// immutable value; the file is read once.
func FromFile(path string) (Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Base{}, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var b Base
	if err := json.Unmarshal(data, &b); err != nil {
		return Base{}, fmt.Errorf("failed to parse knowledge file %s: %w", path, err)
	}
	return b, nil
}

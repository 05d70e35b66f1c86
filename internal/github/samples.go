package github

// SampleRepos is the static fallback shown when the API is down and
// no cache exists yet.  Returned as a fresh slice so callers can
// mutate their copy.
func SampleRepos() []Repo {
	return []Repo{
		{
			Title:        "E-Commerce Platform",
			Description:  "A full-stack e-commerce platform with user authentication, product management, and payment integration.",
			Image:        "/logo192.png",
			Technologies: []string{"React", "Node.js", "Express", "MongoDB", "Redux", "Stripe"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"web", "api"},
		},
		{
			Title:        "Task Management App",
			Description:  "A collaborative task management application with real-time updates and team collaboration features.",
			Image:        "/logo192.png",
			Technologies: []string{"React", "Node.js", "Socket.io", "MongoDB", "Express"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"web"},
		},
		{
			Title:        "Blog Platform",
			Description:  "A content management system for creating and managing blog posts with user authentication.",
			Image:        "/logo192.png",
			Technologies: []string{"React", "Node.js", "Express", "MongoDB", "Cloudinary"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"web"},
		},
		{
			Title:        "Weather Application",
			Description:  "A weather forecast application that provides real-time weather information based on location.",
			Image:        "/logo192.png",
			Technologies: []string{"React Native", "Node.js", "Express", "Weather API"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"mobile", "api"},
		},
		{
			Title:        "Social Media API",
			Description:  "A RESTful API for a social media platform with features like user authentication, posts, comments, and likes.",
			Image:        "/logo192.png",
			Technologies: []string{"Node.js", "Express", "MongoDB", "JWT", "Socket.io"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"api"},
		},
		{
			Title:        "Real Estate Marketplace",
			Description:  "A platform for buying, selling, and renting properties with advanced search and filtering options.",
			Image:        "/logo192.png",
			Technologies: []string{"React", "Node.js", "Express", "MongoDB", "Google Maps API"},
			Github:       "https://github.com/tsegaye25",
			Live:         "https://example.com",
			Categories:   []string{"web", "api"},
		},
	}
}

package template

// Suggestion is a prefilled starting point for a category's form.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Fields      Values
}

var suggestions = map[Category][]Suggestion{
	Documents: {
		{
			ID:          "tech-resume",
			Title:       "Tech Professional Resume",
			Description: "Modern resume for software developers and tech professionals",
			Fields: Values{
				"name": "Alex Johnson", "company": "TechCorp",
				"position": "Senior Software Engineer", "industry": "Technology",
				"tone": "Professional", "experience": "5",
				"skills": "JavaScript, React, Node.js, Python, AWS, Docker",
			},
		},
		{
			ID:          "marketing-resume",
			Title:       "Marketing Manager Resume",
			Description: "Creative resume for marketing and brand professionals",
			Fields: Values{
				"name": "Sarah Chen", "company": "BrandStudio",
				"position": "Marketing Manager", "industry": "Marketing",
				"tone": "Creative", "experience": "7",
				"skills": "Digital Marketing, SEO, Content Strategy, Analytics, Social Media",
			},
		},
		{
			ID:          "business-contract",
			Title:       "Service Agreement Contract",
			Description: "Professional service agreement template",
			Fields: Values{
				"name": "Professional Services LLC", "company": "Client Company",
				"position": "Service Provider", "industry": "Consulting", "tone": "Formal",
			},
		},
	},
	Designs: {
		{
			ID:          "social-media-post",
			Title:       "Instagram Post Design",
			Description: "Eye-catching social media post for engagement",
			Fields: Values{
				"title": "Summer Sale Announcement", "company": "Fashion Brand",
				"description":     "Promote 50% off summer collection with vibrant visuals",
				"style":           "Bold",
				"colors":          "Bright orange and pink gradient",
				"target_audience": "Young adults 18-35",
				"call_to_action":  "Shop Now - 50% Off!",
			},
		},
		{
			ID:          "business-flyer",
			Title:       "Corporate Event Flyer",
			Description: "Professional flyer for business events",
			Fields: Values{
				"title": "Annual Business Conference 2024", "company": "Business Network Inc",
				"description":     "Join industry leaders for networking and insights",
				"style":           "Corporate",
				"colors":          "Navy blue and gold",
				"target_audience": "Business professionals",
				"call_to_action":  "Register Today",
			},
		},
	},
	Web: {
		{
			ID:          "saas-landing",
			Title:       "SaaS Landing Page",
			Description: "High-converting landing page for SaaS products",
			Fields: Values{
				"siteName": "ProductivityPro", "company": "StartupCo",
				"description":     "Streamline your workflow with our all-in-one productivity suite",
				"industry":        "Software",
				"style":           "SaaS",
				"features":        "Task management, Team collaboration, Time tracking, Analytics dashboard",
				"target_audience": "Small to medium businesses",
			},
		},
		{
			ID:          "portfolio-site",
			Title:       "Creative Portfolio",
			Description: "Stunning portfolio for creative professionals",
			Fields: Values{
				"siteName": "Creative Studio", "company": "Freelance Designer",
				"description":     "Award-winning design solutions for modern brands",
				"industry":        "Design",
				"style":           "Creative",
				"features":        "Project showcase, Client testimonials, Contact form, Blog",
				"target_audience": "Potential clients and collaborators",
			},
		},
	},
	Presentations: {
		{
			ID:          "startup-pitch",
			Title:       "Startup Pitch Deck",
			Description: "Compelling pitch deck for investors",
			Fields: Values{
				"title": "EcoTech Solutions - Series A Pitch", "company": "EcoTech",
				"audience": "Venture capitalists and angel investors",
				"purpose":  "Pitch", "duration": "15",
				"key_points": "Problem statement, Market opportunity, Solution overview, Business model, Traction, Team, Funding ask",
				"tone":       "Persuasive",
			},
		},
		{
			ID:          "training-module",
			Title:       "Employee Training Module",
			Description: "Comprehensive training presentation",
			Fields: Values{
				"title": "Digital Marketing Fundamentals", "company": "Marketing Agency",
				"audience": "New employees",
				"purpose":  "Training", "duration": "60",
				"key_points": "SEO basics, Social media strategy, Content marketing, Analytics",
				"tone":       "Educational",
			},
		},
	},
	Email: {
		{
			ID:          "social-campaign",
			Title:       "Social Media Campaign Email",
			Description: "Email promoting social media engagement",
			Fields: Values{
				"subject": "Join Our #SummerVibes Challenge!", "company": "Lifestyle Brand",
				"audience": "Social media followers and customers",
				"purpose":  "Social Media Campaign", "tone": "Exciting",
				"call_to_action": "Share Your Summer Moment",
				"pain_points":    "Lack of engagement, Need for user-generated content",
			},
		},
		{
			ID:          "product-promo",
			Title:       "Product Promotion Email",
			Description: "Compelling email for product promotions",
			Fields: Values{
				"subject": "Exclusive 48-Hour Flash Sale Inside!", "company": "E-commerce Store",
				"audience": "Email subscribers",
				"purpose":  "Promotion", "tone": "Urgent",
				"call_to_action": "Shop Now - Limited Time",
				"pain_points":    "High prices, Fear of missing out",
			},
		},
		{
			ID:          "welcome-series",
			Title:       "Welcome Email Series",
			Description: "Warm welcome email for new subscribers",
			Fields: Values{
				"subject": "Welcome to the Family! Here's What's Next...", "company": "SaaS Platform",
				"audience": "New users",
				"purpose":  "Welcome", "tone": "Friendly",
				"call_to_action": "Complete Your Setup",
				"pain_points":    "Onboarding confusion, Feature discovery",
			},
		},
	},
}

// SuggestionsFor returns the prefilled suggestions for a category.
func SuggestionsFor(c Category) []Suggestion {
	return suggestions[c]
}

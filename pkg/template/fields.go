package template

// FieldType describes how a field is captured in a form.
type FieldType string

const (
	Text     FieldType = "text"
	TextArea FieldType = "textarea"
	Select   FieldType = "select"
	Number   FieldType = "number"
	Date     FieldType = "date"
)

// Field defines one input in a category's form schema.
type Field struct {
	Key      string
	Label    string
	Type     FieldType
	Required bool
	Options  []string
}

var categoryFields = map[Category][]Field{
	Documents: {
		{Key: "name", Label: "Full Name", Type: Text, Required: true},
		{Key: "company", Label: "Company", Type: Text},
		{Key: "position", Label: "Position/Title", Type: Text},
		{Key: "industry", Label: "Industry", Type: Text},
		{Key: "tone", Label: "Tone", Type: Select, Required: true, Options: []string{"Professional", "Friendly", "Formal", "Creative"}},
		{Key: "experience", Label: "Years of Experience", Type: Number},
		{Key: "skills", Label: "Key Skills", Type: TextArea},
	},
	Designs: {
		{Key: "title", Label: "Design Title", Type: Text, Required: true},
		{Key: "company", Label: "Company/Brand", Type: Text},
		{Key: "description", Label: "Description", Type: TextArea},
		{Key: "style", Label: "Style", Type: Select, Required: true, Options: []string{"Modern", "Minimalist", "Bold", "Elegant", "Playful", "Corporate", "Creative"}},
		{Key: "colors", Label: "Color Preference", Type: Text},
		{Key: "target_audience", Label: "Target Audience", Type: Text},
		{Key: "call_to_action", Label: "Call to Action", Type: Text},
	},
	Web: {
		{Key: "siteName", Label: "Website Name", Type: Text, Required: true},
		{Key: "company", Label: "Company", Type: Text},
		{Key: "description", Label: "Website Description", Type: TextArea, Required: true},
		{Key: "industry", Label: "Industry", Type: Text},
		{Key: "style", Label: "Style", Type: Select, Required: true, Options: []string{"Corporate", "Creative", "E-commerce", "Portfolio", "Blog", "SaaS", "Agency"}},
		{Key: "features", Label: "Key Features", Type: TextArea},
		{Key: "target_audience", Label: "Target Audience", Type: Text},
	},
	Presentations: {
		{Key: "title", Label: "Presentation Title", Type: Text, Required: true},
		{Key: "company", Label: "Company", Type: Text},
		{Key: "audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "purpose", Label: "Purpose", Type: Select, Required: true, Options: []string{"Pitch", "Training", "Report", "Marketing", "Educational", "Sales", "Product Launch"}},
		{Key: "duration", Label: "Duration (minutes)", Type: Number},
		{Key: "key_points", Label: "Key Points", Type: TextArea},
		{Key: "tone", Label: "Tone", Type: Select, Options: []string{"Professional", "Casual", "Persuasive", "Educational", "Inspiring"}},
	},
	Email: {
		{Key: "subject", Label: "Email Subject", Type: Text, Required: true},
		{Key: "company", Label: "Company", Type: Text},
		{Key: "audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "purpose", Label: "Email Purpose", Type: Select, Required: true, Options: []string{"Newsletter", "Promotion", "Welcome", "Follow-up", "Announcement", "Social Media Campaign", "Product Launch"}},
		{Key: "tone", Label: "Tone", Type: Select, Required: true, Options: []string{"Professional", "Friendly", "Casual", "Urgent", "Exciting"}},
		{Key: "call_to_action", Label: "Call to Action", Type: Text},
		{Key: "pain_points", Label: "Pain Points to Address", Type: TextArea},
	},
	Video: {
		{Key: "title", Label: "Video Title", Type: Text, Required: true},
		{Key: "platform", Label: "Platform", Type: Select, Required: true, Options: []string{"YouTube", "TikTok", "Instagram", "Facebook", "LinkedIn", "Twitter"}},
		{Key: "duration", Label: "Duration (minutes)", Type: Number, Required: true},
		{Key: "audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "purpose", Label: "Video Purpose", Type: Select, Required: true, Options: []string{"Tutorial", "Product Demo", "Entertainment", "Educational", "Marketing", "Testimonial"}},
		{Key: "tone", Label: "Tone", Type: Select, Required: true, Options: []string{"Casual", "Professional", "Energetic", "Informative", "Funny"}},
		{Key: "key_points", Label: "Key Points", Type: TextArea},
	},
	Events: {
		{Key: "event_name", Label: "Event Name", Type: Text, Required: true},
		{Key: "event_type", Label: "Event Type", Type: Select, Required: true, Options: []string{"Conference", "Workshop", "Webinar", "Networking", "Product Launch", "Training", "Social"}},
		{Key: "date", Label: "Event Date", Type: Text, Required: true},
		{Key: "location", Label: "Location/Platform", Type: Text, Required: true},
		{Key: "audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "description", Label: "Event Description", Type: TextArea},
		{Key: "organizer", Label: "Organizer", Type: Text},
	},
	Ecommerce: {
		{Key: "product_name", Label: "Product Name", Type: Text, Required: true},
		{Key: "category", Label: "Product Category", Type: Text, Required: true},
		{Key: "price", Label: "Price", Type: Text},
		{Key: "target_audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "key_features", Label: "Key Features", Type: TextArea, Required: true},
		{Key: "benefits", Label: "Main Benefits", Type: TextArea},
		{Key: "brand_tone", Label: "Brand Tone", Type: Select, Required: true, Options: []string{"Professional", "Friendly", "Luxury", "Casual", "Technical"}},
	},
	Social: {
		{Key: "platform", Label: "Social Platform", Type: Select, Required: true, Options: []string{"Instagram", "Facebook", "Twitter", "LinkedIn", "TikTok", "Pinterest", "YouTube"}},
		{Key: "content_type", Label: "Content Type", Type: Select, Required: true, Options: []string{"Post", "Story", "Reel", "Thread", "Carousel", "Video", "Live"}},
		{Key: "topic", Label: "Topic/Theme", Type: Text, Required: true},
		{Key: "audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "goal", Label: "Goal", Type: Select, Required: true, Options: []string{"Engagement", "Brand Awareness", "Sales", "Education", "Entertainment", "Community Building"}},
		{Key: "tone", Label: "Tone", Type: Select, Required: true, Options: []string{"Casual", "Professional", "Funny", "Inspiring", "Educational"}},
		{Key: "hashtags", Label: "Key Hashtags", Type: Text},
	},
	Educational: {
		{Key: "course_title", Label: "Course/Lesson Title", Type: Text, Required: true},
		{Key: "subject", Label: "Subject Area", Type: Text, Required: true},
		{Key: "level", Label: "Level", Type: Select, Required: true, Options: []string{"Beginner", "Intermediate", "Advanced", "All Levels"}},
		{Key: "duration", Label: "Duration", Type: Text},
		{Key: "learning_objectives", Label: "Learning Objectives", Type: TextArea, Required: true},
		{Key: "target_audience", Label: "Target Audience", Type: Text, Required: true},
		{Key: "teaching_method", Label: "Teaching Method", Type: Select, Options: []string{"Lecture", "Interactive", "Hands-on", "Discussion", "Project-based"}},
	},
}

// FieldsFor returns the form schema for a category.
func FieldsFor(c Category) []Field {
	return categoryFields[c]
}

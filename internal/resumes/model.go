package resumes

// Contact holds the candidate's contact details. Every field is optional;
// the upstream producer (an LLM) may omit any of them.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// EducationEntry is a single education item.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Period      string `json:"period,omitempty"`
}

// ExperienceEntry is a single work-history item.
type ExperienceEntry struct {
	Employer    string `json:"employer,omitempty"`
	Title       string `json:"title,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Record is the validated structured representation of a parsed resume.
// DocumentID is the only required field; it is generated before persistence
// and never reused. The JSON field names are the store and API contract.
type Record struct {
	DocumentID     string            `json:"document_id"`
	Contact        *Contact          `json:"contact,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills"`
	Education      []EducationEntry  `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Certifications []string          `json:"certifications"`
	RawText        string            `json:"raw_text,omitempty"`
}

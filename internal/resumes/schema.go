package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecordFromRaw maps the LLM's parsed JSON onto a Record. The mapping is
// deliberately permissive: absent or mistyped fields become zero values and
// unknown fields are ignored, because the upstream producer is not
// contract-bound. It fails only when the payload is not a JSON object at all.
func RecordFromRaw(raw json.RawMessage) (Record, error) {
	var top map[string]any
	if err := json.Unmarshal(raw, &top); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if top == nil {
		return Record{}, fmt.Errorf("%w: null payload", ErrSchemaValidation)
	}

	rec := Record{
		Contact:        extractContact(top["contact"]),
		Summary:        asString(top["summary"]),
		Skills:         extractStringSlice(top["skills"]),
		Education:      extractEducation(top["education"]),
		Experience:     extractExperience(top["experience"]),
		Certifications: extractStringSlice(top["certifications"]),
	}
	return rec, nil
}

func extractContact(value any) *Contact {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	contact := Contact{
		Name:  asString(m["name"]),
		Email: asString(m["email"]),
		Phone: asString(m["phone"]),
	}
	if contact == (Contact{}) {
		return nil
	}
	return &contact
}

func extractEducation(value any) []EducationEntry {
	items, ok := value.([]any)
	if !ok {
		return []EducationEntry{}
	}
	out := make([]EducationEntry, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, EducationEntry{
			Institution: asString(m["institution"]),
			Degree:      asString(m["degree"]),
			Period:      asString(m["period"]),
		})
	}
	return out
}

func extractExperience(value any) []ExperienceEntry {
	items, ok := value.([]any)
	if !ok {
		return []ExperienceEntry{}
	}
	out := make([]ExperienceEntry, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, ExperienceEntry{
			Employer:    asString(m["employer"]),
			Title:       asString(m["title"]),
			Period:      asString(m["period"]),
			Description: asString(m["description"]),
		})
	}
	return out
}

func extractStringSlice(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func asString(value any) string {
	str, _ := value.(string)
	return str
}

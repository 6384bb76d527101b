package llm

import "fmt"

// Message is a provider-neutral chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a JSON-only extraction engine. Always return valid JSON."

// The field names below are the de-facto schema contract with the model;
// changing them changes parsing behavior downstream.
const extractionInstructions = `Extract structured resume fields from the text below and return a single JSON object with exactly these keys:
- "contact": object with optional string fields "name", "email", "phone"
- "summary": string or null
- "skills": array of strings
- "education": array of objects with string fields "institution", "degree", "period"
- "experience": array of objects with string fields "employer", "title", "period", "description"
- "certifications": array of strings

Omit nothing: use null or empty arrays for fields the text does not mention. Return JSON only, with no commentary.`

// BuildPrompt creates the chat messages for a resume structuring request.
func BuildPrompt(resumeText string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf("%s\n\nText:\n\"\"\"%s\"\"\"", extractionInstructions, resumeText)},
	}
}

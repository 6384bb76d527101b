package resumes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser/internal/resumes"
)

func TestRecordFromRawPartialPayload(t *testing.T) {
	rec, err := resumes.RecordFromRaw(json.RawMessage(scenarioJSON))
	require.NoError(t, err)

	require.NotNil(t, rec.Contact)
	assert.Equal(t, "John Doe", rec.Contact.Name)
	assert.Empty(t, rec.Contact.Email)
	assert.Equal(t, "", rec.Summary)
	assert.Equal(t, []string{"Python", "Go"}, rec.Skills)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "", rec.Education[0].Institution)
	assert.Equal(t, "B.Sc. CS", rec.Education[0].Degree)
	assert.Equal(t, "2020", rec.Education[0].Period)

	assert.NotNil(t, rec.Experience)
	assert.Empty(t, rec.Experience)
	assert.NotNil(t, rec.Certifications)
	assert.Empty(t, rec.Certifications)
}

func TestRecordFromRawNonObject(t *testing.T) {
	cases := []string{`[]`, `"just a string"`, `42`, `null`, `not json at all`}
	for _, payload := range cases {
		_, err := resumes.RecordFromRaw(json.RawMessage(payload))
		assert.ErrorIs(t, err, resumes.ErrSchemaValidation, "payload %s", payload)
	}
}

func TestRecordFromRawToleratesMistypedFields(t *testing.T) {
	raw := json.RawMessage(`{
		"contact": "not an object",
		"summary": 12,
		"skills": ["Go", 7, "SQL"],
		"education": "none",
		"experience": [{"employer": "Acme", "title": true}],
		"certifications": [null, "AWS SAA"]
	}`)

	rec, err := resumes.RecordFromRaw(raw)
	require.NoError(t, err)

	assert.Nil(t, rec.Contact)
	assert.Equal(t, "", rec.Summary)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	assert.Empty(t, rec.Education)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "Acme", rec.Experience[0].Employer)
	assert.Equal(t, "", rec.Experience[0].Title)
	assert.Equal(t, []string{"AWS SAA"}, rec.Certifications)
}

func TestRecordFromRawIgnoresUnknownFields(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Engineer","hobbies":["chess"],"confidence":0.93}`)

	rec, err := resumes.RecordFromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", rec.Summary)
	assert.Empty(t, rec.Skills)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractedQuestions(t *testing.T) {
	raw := `{"questions": [
		{"question_no": "1", "question_text": "Solve x+2=5", "marks": "10", "type": "short"},
		{"question_no": "2", "question_text": "Define velocity", "marks": "5", "type": "definition"}
	]}`

	parsed, err := parseExtractedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Questions, 2)
	assert.Equal(t, "1", parsed.Questions[0].QuestionNo)
	assert.Equal(t, "Solve x+2=5", parsed.Questions[0].QuestionText)
	assert.Equal(t, "10", parsed.Questions[0].Marks)
}

func TestParseExtractedQuestions_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"questions\": [{\"question_no\": \"1\", \"question_text\": \"Q\", \"marks\": \"2\", \"type\": \"mcq\"}]}\n```"

	parsed, err := parseExtractedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Questions, 1)
	assert.Equal(t, "mcq", parsed.Questions[0].Type)
}

func TestParseExtractedQuestions_NumericMarks(t *testing.T) {
	raw := `{"questions": [{"question_no": 3, "question_text": "Q", "marks": 4, "type": "short"}]}`

	parsed, err := parseExtractedQuestions(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Questions, 1)
	assert.Equal(t, "3", parsed.Questions[0].QuestionNo)
	assert.Equal(t, "4", parsed.Questions[0].Marks)
}

func TestParseExtractedQuestions_Invalid(t *testing.T) {
	_, err := parseExtractedQuestions("no json here")
	assert.Error(t, err)

	_, err = parseExtractedQuestions(`{"questions": []}`)
	assert.Error(t, err)
}

func TestParseExtractedRubric(t *testing.T) {
	raw := "```json\n" + `{"rubric": [
		{"concept_no": "1", "concept": "Factorisation", "explanation": "Split into linear factors", "example": "x^2-4=(x-2)(x+2)", "status": "required"},
		{"concept_no": 2, "concept": "Substitution", "explanation": "", "example": "", "status": "optional"}
	]}` + "\n```"

	parsed, err := parseExtractedRubric(raw)
	require.NoError(t, err)
	require.Len(t, parsed.Rubric, 2)
	assert.Equal(t, "1", parsed.Rubric[0].ConceptNo)
	assert.Equal(t, "Factorisation", parsed.Rubric[0].Concept)
	assert.Equal(t, "2", parsed.Rubric[1].ConceptNo)
}

func TestParseExtractedRubric_Invalid(t *testing.T) {
	_, err := parseExtractedRubric("not json")
	assert.Error(t, err)

	_, err = parseExtractedRubric(`{"rubric": []}`)
	assert.Error(t, err)
}

func TestFormatRubricText(t *testing.T) {
	raw := `{"rubric": [
		{"concept_no": "1", "concept": "Factorisation", "explanation": "Split into linear factors", "example": "x^2-4=(x-2)(x+2)"},
		{"concept_no": "2", "concept": "Substitution"}
	]}`
	parsed, err := parseExtractedRubric(raw)
	require.NoError(t, err)

	text := formatRubricText(parsed)
	assert.Equal(t,
		"1. Factorisation: Split into linear factors (example: x^2-4=(x-2)(x+2))\n2. Substitution",
		text)
}

package service

import (
	"testing"

	"paper-grade/biz/infrastructure/repository/questionbank"
	"paper-grade/biz/infrastructure/repository/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGradingResponse = `Total Score: 42/50
Question Scores:
Q1: 8/10
Q2a: 4.5/5
Q3: 10/10
Remarks: Good grasp of the fundamentals.
Strengths: Clear working shown throughout.
Improvements: Revise factorisation,
especially quadratics.
`

func TestParseGradingResponse(t *testing.T) {
	result, err := ParseGradingResponse(sampleGradingResponse, 50)
	require.NoError(t, err)

	assert.Equal(t, 42.0, result.Score)
	assert.Equal(t, 50.0, result.MaxScore)
	assert.Equal(t, "Good grasp of the fundamentals.", result.Remarks)
	assert.Equal(t, "Clear working shown throughout.", result.Strengths)
	assert.Equal(t, "Revise factorisation, especially quadratics.", result.Improvements)

	require.Len(t, result.QuestionScores, 3)
	assert.Equal(t, "1", result.QuestionScores[0].QuestionNo)
	assert.Equal(t, 8.0, result.QuestionScores[0].Awarded)
	assert.Equal(t, 10.0, result.QuestionScores[0].Total)
	assert.Equal(t, "2a", result.QuestionScores[1].QuestionNo)
	assert.Equal(t, 4.5, result.QuestionScores[1].Awarded)
}

func TestParseGradingResponse_ClampsScore(t *testing.T) {
	result, err := ParseGradingResponse("Total Score: 120/100", 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)

	result, err = ParseGradingResponse("Total Score: -3/100", 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
}

func TestParseGradingResponse_BareScore(t *testing.T) {
	result, err := ParseGradingResponse("Total Score: 17", 20)
	require.NoError(t, err)
	assert.Equal(t, 17.0, result.Score)
	assert.Equal(t, 20.0, result.MaxScore)
}

func TestParseGradingResponse_MissingScore(t *testing.T) {
	_, err := ParseGradingResponse("Remarks: nothing to grade", 100)
	assert.Error(t, err)
}

func TestParseGradingResponse_CaseInsensitiveHeadings(t *testing.T) {
	result, err := ParseGradingResponse("total score: 5/10\nremarks: ok", 10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Score)
	assert.Equal(t, "ok", result.Remarks)
}

func TestBuildGradingPrompt(t *testing.T) {
	tt := &test.Test{
		Title:      "Algebra Midterm",
		Subject:    "Mathematics",
		TotalMarks: 50,
		Rubric:     "One mark per correct step.",
	}
	questions := []*questionbank.Question{
		{QuestionNo: "1", Text: "Solve x+2=5", Marks: "10"},
	}

	prompt := BuildGradingPrompt("Grade this answer.", tt, questions, "x = 3")

	assert.Contains(t, prompt, "Grade this answer.")
	assert.Contains(t, prompt, "Algebra Midterm")
	assert.Contains(t, prompt, "Total marks: 50")
	assert.Contains(t, prompt, "One mark per correct step.")
	assert.Contains(t, prompt, "Q1 (10 marks): Solve x+2=5")
	assert.Contains(t, prompt, "x = 3")
	assert.Contains(t, prompt, "Total Score:")
}

func TestBuildGradingPrompt_NoRubricNoQuestions(t *testing.T) {
	tt := &test.Test{Title: "Quiz", Subject: "History", TotalMarks: 20}
	prompt := BuildGradingPrompt("Grade.", tt, nil, "answer text")

	assert.Contains(t, prompt, "Standard grading criteria")
	assert.NotContains(t, prompt, "Questions:")
	assert.Contains(t, prompt, "answer text")
}

func TestParseQuestionScore(t *testing.T) {
	qs, ok := parseQuestionScore("Q4: 2/3")
	require.True(t, ok)
	assert.Equal(t, "4", qs.QuestionNo)
	assert.Equal(t, 2.0, qs.Awarded)
	assert.Equal(t, 3.0, qs.Total)

	_, ok = parseQuestionScore("not a score line")
	assert.False(t, ok)

	_, ok = parseQuestionScore("Q5 no colon")
	assert.False(t, ok)
}

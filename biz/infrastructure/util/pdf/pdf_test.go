package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndividualReport(t *testing.T) {
	data, err := BuildIndividualReport(&IndividualReport{
		StudentName:  "Alice",
		StudentClass: "10A",
		TestTitle:    "Algebra Midterm",
		Subject:      "Mathematics",
		Score:        42,
		MaxScore:     50,
		Remarks:      "Solid work.",
		Strengths:    "Clear steps.",
		Improvements: "Check signs.",
		QuestionScores: []QuestionRow{
			{QuestionNo: "1", Awarded: 8, Total: 10},
		},
		GradedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildClassReport(t *testing.T) {
	data, err := BuildClassReport(&ClassReport{
		TestTitle:   "Algebra Midterm",
		Subject:     "Mathematics",
		Submissions: 2,
		Graded:      2,
		Average:     40,
		Highest:     45,
		Lowest:      35,
		Distribution: []DistributionBucket{
			{Label: "60-79%", Count: 1},
			{Label: "80-100%", Count: 1},
		},
		Rows: []ClassRow{
			{StudentName: "Alice", Score: 45, Status: "graded"},
			{StudentName: "Bob", Score: 35, Status: "graded"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildIndividualReport_MinimalFields(t *testing.T) {
	data, err := BuildIndividualReport(&IndividualReport{
		StudentName: "Bob",
		TestTitle:   "Quiz",
		GradedAt:    time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
}

package service

import (
	"testing"

	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classFixture() (*test.Test, []*submission.Submission, map[string]string) {
	tt := &test.Test{Title: "Physics Final", Subject: "Physics", TotalMarks: 100}
	subs := []*submission.Submission{
		{StudentID: "s1", Status: consts.StatusGraded, Score: 90},
		{StudentID: "s2", Status: consts.StatusGraded, Score: 55},
		{StudentID: "s3", Status: consts.StatusGraded, Score: 35},
		{StudentID: "s4", Status: consts.StatusFailed},
	}
	names := map[string]string{"s1": "Alice", "s2": "Bob", "s3": "Carol"}
	return tt, subs, names
}

func TestBuildClassReportData(t *testing.T) {
	tt, subs, names := classFixture()
	report := BuildClassReportData(tt, subs, names)

	assert.Equal(t, "Physics Final", report.TestTitle)
	assert.Equal(t, 4, report.Submissions)
	assert.Equal(t, 3, report.Graded)
	assert.InDelta(t, 60.0, report.Average, 0.001)
	assert.Equal(t, 90.0, report.Highest)
	assert.Equal(t, 35.0, report.Lowest)

	require.Len(t, report.Rows, 4)
	assert.Equal(t, "Alice", report.Rows[0].StudentName)
	// the printed score is exactly the stored score
	assert.Equal(t, subs[0].Score, report.Rows[0].Score)
	assert.Equal(t, "Unknown", report.Rows[3].StudentName)
}

func TestBuildClassReportData_Distribution(t *testing.T) {
	tt, subs, names := classFixture()
	report := BuildClassReportData(tt, subs, names)

	require.Len(t, report.Distribution, 4)
	assert.Equal(t, 1, report.Distribution[0].Count) // 35 -> 0-39%
	assert.Equal(t, 1, report.Distribution[1].Count) // 55 -> 40-59%
	assert.Equal(t, 0, report.Distribution[2].Count)
	assert.Equal(t, 1, report.Distribution[3].Count) // 90 -> 80-100%
}

func TestBuildClassReportData_NoGraded(t *testing.T) {
	tt := &test.Test{Title: "Quiz", Subject: "History", TotalMarks: 10}
	subs := []*submission.Submission{
		{StudentID: "s1", Status: consts.StatusSubmitted},
	}
	report := BuildClassReportData(tt, subs, nil)

	assert.Equal(t, 1, report.Submissions)
	assert.Equal(t, 0, report.Graded)
	assert.Equal(t, 0.0, report.Average)
	assert.Empty(t, report.Distribution)
}

func TestScoreDistribution_BucketEdges(t *testing.T) {
	subs := []*submission.Submission{
		{Status: consts.StatusGraded, Score: 39},
		{Status: consts.StatusGraded, Score: 40},
		{Status: consts.StatusGraded, Score: 60},
		{Status: consts.StatusGraded, Score: 80},
		{Status: consts.StatusGraded, Score: 100},
	}
	buckets := scoreDistribution(subs, 100)
	require.Len(t, buckets, 4)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 1, buckets[1].Count)
	assert.Equal(t, 1, buckets[2].Count)
	assert.Equal(t, 2, buckets[3].Count)
}

func TestScoreDistribution_ZeroTotal(t *testing.T) {
	assert.Nil(t, scoreDistribution(nil, 0))
}

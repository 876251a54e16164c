package service

import (
	"testing"

	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func retryFixture(status string) (*SubmissionService, *fakeSubmissionMapper, string) {
	id := primitive.NewObjectID()
	mapper := &fakeSubmissionMapper{
		findOne: func(string) (*submission.Submission, error) {
			return &submission.Submission{
				ID:      id,
				Status:  status,
				Score:   55,
				Message: "grading unavailable, please retry",
			}, nil
		},
	}
	return &SubmissionService{SubmissionMapper: mapper}, mapper, id.Hex()
}

func TestRetryGradingRejectsGradedSubmission(t *testing.T) {
	svc, mapper, id := retryFixture(consts.StatusGraded)
	ctx := signedContext(t, "u1", "admin", consts.RoleAdmin)

	_, err := svc.RetryGrading(ctx, &assistant.RetryGradingReq{SubmissionId: id})

	assert.ErrorIs(t, err, consts.ErrUpdate)
	assert.Empty(t, mapper.updates, "a stored grade must not be requeued")
}

func TestRetryGradingRejectsGradingInProgress(t *testing.T) {
	svc, mapper, id := retryFixture(consts.StatusGrading)
	ctx := signedContext(t, "u1", "admin", consts.RoleAdmin)

	_, err := svc.RetryGrading(ctx, &assistant.RetryGradingReq{SubmissionId: id})

	assert.ErrorIs(t, err, consts.ErrGradingInProgress)
	assert.Empty(t, mapper.updates)
}

func TestRetryGradingRequeuesFailedSubmission(t *testing.T) {
	svc, mapper, id := retryFixture(consts.StatusFailed)
	ctx := signedContext(t, "u1", "admin", consts.RoleAdmin)

	_, err := svc.RetryGrading(ctx, &assistant.RetryGradingReq{SubmissionId: id})

	require.NoError(t, err)
	require.Len(t, mapper.updates, 1)
	assert.Equal(t, consts.StatusSubmitted, mapper.updates[0].Status)
	assert.Equal(t, "", mapper.updates[0].Message, "the old failure reason must be cleared")
}

func TestRetryGradingRequiresAdmin(t *testing.T) {
	svc, mapper, id := retryFixture(consts.StatusFailed)
	ctx := signedContext(t, "u2", "student", consts.RoleStudent)

	_, err := svc.RetryGrading(ctx, &assistant.RetryGradingReq{SubmissionId: id})

	assert.ErrorIs(t, err, consts.ErrForbidden)
	assert.Empty(t, mapper.updates)
}

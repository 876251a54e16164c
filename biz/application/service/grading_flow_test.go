package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/repository/submission"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProcessOneSkipsAlreadyGradedSubmission(t *testing.T) {
	id := primitive.NewObjectID()
	mapper := &fakeSubmissionMapper{
		findOne: func(string) (*submission.Submission, error) {
			return &submission.Submission{ID: id, Status: consts.StatusGraded, Score: 42}, nil
		},
	}
	svc := &GradingService{SubmissionMapper: mapper, Locks: &fakeLockFactory{}}

	svc.processOne(context.Background(), &submission.Submission{ID: id, Status: consts.StatusSubmitted})

	assert.Empty(t, mapper.updates, "a graded submission must never be written again")
}

func TestProcessOneSkipsGradingInProgress(t *testing.T) {
	id := primitive.NewObjectID()
	mapper := &fakeSubmissionMapper{
		findOne: func(string) (*submission.Submission, error) {
			return &submission.Submission{ID: id, Status: consts.StatusGrading}, nil
		},
	}
	svc := &GradingService{SubmissionMapper: mapper, Locks: &fakeLockFactory{}}

	svc.processOne(context.Background(), &submission.Submission{ID: id, Status: consts.StatusSubmitted})

	assert.Empty(t, mapper.updates)
}

func TestProcessOneBacksOffWhenLockHeld(t *testing.T) {
	mapper := &fakeSubmissionMapper{}
	svc := &GradingService{
		SubmissionMapper: mapper,
		Locks:            &fakeLockFactory{lockErr: errors.New("lock held")},
	}

	svc.processOne(context.Background(), &submission.Submission{
		ID:     primitive.NewObjectID(),
		Status: consts.StatusSubmitted,
	})

	assert.Zero(t, mapper.findOneCalls, "another holder owns the submission")
	assert.Empty(t, mapper.updates)
}

func TestMarkFailedStoresGenericMessage(t *testing.T) {
	mapper := &fakeSubmissionMapper{}
	svc := &GradingService{SubmissionMapper: mapper}
	sub := &submission.Submission{ID: primitive.NewObjectID(), Status: consts.StatusGrading}

	svc.markFailed(context.Background(), sub, errors.New("dial tcp 10.0.0.1:443: i/o timeout"))

	if assert.Len(t, mapper.updates, 1) {
		stored := mapper.updates[0]
		assert.Equal(t, consts.StatusFailed, stored.Status)
		assert.Equal(t, consts.ErrGradingUnavailable.Error(), stored.Message)
		assert.NotContains(t, stored.Message, "dial tcp")
	}
}

func TestStartGraderStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := &GradingService{}
	done := make(chan struct{})
	go func() {
		svc.StartGrader(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("grader kept running after cancel")
	}
}

func TestStartCleanupStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := &MaintenanceService{}
	done := make(chan struct{})
	go func() {
		svc.StartCleanup(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup kept running after cancel")
	}
}

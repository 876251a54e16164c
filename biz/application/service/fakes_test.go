package service

import (
	"context"
	"testing"
	"time"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/lock"
	"paper-grade/biz/infrastructure/repository/submission"
	"paper-grade/biz/infrastructure/repository/user"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/require"
)

// signedContext builds a request context carrying a real session token, the
// same way an authenticated request arrives at a service.
func signedContext(t *testing.T, userID, username, role string) context.Context {
	t.Helper()
	if config.GetConfig() == nil {
		t.Setenv("CONFIG_PATH", "testdata/config.yaml")
		_, err := config.NewConfig()
		require.NoError(t, err)
	}
	token, _, err := adaptor.GenerateJwtToken(userID, username, role)
	require.NoError(t, err)

	c := app.NewContext(0)
	c.Request.Header.Set("Authorization", token)
	return adaptor.InjectContext(context.Background(), c)
}

// fakeSubmissionMapper is an in-memory stand-in for the Mongo-backed mapper.
// Every Update is recorded so tests can assert on the stored state.
type fakeSubmissionMapper struct {
	findOne      func(id string) (*submission.Submission, error)
	findOneCalls int
	updates      []*submission.Submission
}

func (f *fakeSubmissionMapper) Insert(ctx context.Context, s *submission.Submission) error {
	return nil
}

func (f *fakeSubmissionMapper) Update(ctx context.Context, s *submission.Submission) error {
	copied := *s
	f.updates = append(f.updates, &copied)
	return nil
}

func (f *fakeSubmissionMapper) FindOne(ctx context.Context, id string) (*submission.Submission, error) {
	f.findOneCalls++
	if f.findOne != nil {
		return f.findOne(id)
	}
	return nil, consts.ErrNotFound
}

func (f *fakeSubmissionMapper) FindByTestAndStudent(ctx context.Context, testID, studentID string) (*submission.Submission, error) {
	return nil, consts.ErrNotFound
}

func (f *fakeSubmissionMapper) FindByTestID(ctx context.Context, testID string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	return nil, 0, nil
}

func (f *fakeSubmissionMapper) FindByStudentID(ctx context.Context, studentID string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	return nil, 0, nil
}

func (f *fakeSubmissionMapper) FindByStatus(ctx context.Context, status string) ([]*submission.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionMapper) FindAllByTestID(ctx context.Context, testID string) ([]*submission.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionMapper) FindStuck(ctx context.Context, cutoff time.Time) ([]*submission.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionMapper) CountByTestID(ctx context.Context, testID string) (int64, error) {
	return 0, nil
}

func (f *fakeSubmissionMapper) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	return 0, nil
}

func (f *fakeSubmissionMapper) Delete(ctx context.Context, id string) error {
	return nil
}

type fakeUserMapper struct {
	count    int64
	byName   map[string]*user.User
	inserted []*user.User
}

func (f *fakeUserMapper) Insert(ctx context.Context, u *user.User) error {
	f.inserted = append(f.inserted, u)
	return nil
}

func (f *fakeUserMapper) Update(ctx context.Context, u *user.User) error {
	return nil
}

func (f *fakeUserMapper) FindOne(ctx context.Context, id string) (*user.User, error) {
	return nil, consts.ErrNotFound
}

func (f *fakeUserMapper) FindOneByUsername(ctx context.Context, username string) (*user.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, consts.ErrNotFound
}

func (f *fakeUserMapper) Count(ctx context.Context) (int64, error) {
	return f.count, nil
}

func (f *fakeUserMapper) DeleteByStudentID(ctx context.Context, studentID string) error {
	return nil
}

type fakeLock struct {
	lockErr error
	expired bool
}

func (l *fakeLock) Lock() error   { return l.lockErr }
func (l *fakeLock) Unlock() error { return nil }
func (l *fakeLock) Expired() bool { return l.expired }

type fakeLockFactory struct {
	lockErr error
	expired bool
}

func (f *fakeLockFactory) NewGradeMutex(ctx context.Context, key string, ttlSec int) lock.Locker {
	return &fakeLock{lockErr: f.lockErr, expired: f.expired}
}

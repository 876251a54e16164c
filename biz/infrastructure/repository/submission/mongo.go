package submission

import (
	"context"
	"time"

	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type IMongoMapper interface {
	Insert(ctx context.Context, s *Submission) error
	Update(ctx context.Context, s *Submission) error
	FindOne(ctx context.Context, id string) (*Submission, error)
	FindByTestAndStudent(ctx context.Context, testID, studentID string) (*Submission, error)
	FindByTestID(ctx context.Context, testID string, page, pageSize int64) ([]*Submission, int64, error)
	FindByStudentID(ctx context.Context, studentID string, page, pageSize int64) ([]*Submission, int64, error)
	FindByStatus(ctx context.Context, status string) ([]*Submission, error)
	FindAllByTestID(ctx context.Context, testID string) ([]*Submission, error)
	FindStuck(ctx context.Context, cutoff time.Time) ([]*Submission, error)
	CountByTestID(ctx context.Context, testID string) (int64, error)
	CountByStudentID(ctx context.Context, studentID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Submission) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Submission) error {
	s.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{"$set": s})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{consts.ID: oid})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

// FindByTestAndStudent backs the one-submission-per-test rule.
func (m *MongoMapper) FindByTestAndStudent(ctx context.Context, testID, studentID string) (*Submission, error) {
	var s Submission
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{consts.TestID: testID, consts.StudentID: studentID})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

func (m *MongoMapper) FindByTestID(ctx context.Context, testID string, page, pageSize int64) ([]*Submission, int64, error) {
	return m.findMany(ctx, bson.M{consts.TestID: testID}, page, pageSize)
}

func (m *MongoMapper) FindByStudentID(ctx context.Context, studentID string, page, pageSize int64) ([]*Submission, int64, error) {
	return m.findMany(ctx, bson.M{consts.StudentID: studentID}, page, pageSize)
}

func (m *MongoMapper) findMany(ctx context.Context, filter bson.M, page, pageSize int64) ([]*Submission, int64, error) {
	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	var submissions []*Submission
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"submit_time": -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (m *MongoMapper) FindByStatus(ctx context.Context, status string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.Status: status}, &options.FindOptions{
		Sort: bson.M{"submit_time": 1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindAllByTestID returns every submission of a test, used by the class
// report aggregation.
func (m *MongoMapper) FindAllByTestID(ctx context.Context, testID string) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{consts.TestID: testID}, &options.FindOptions{
		Sort: bson.M{"submit_time": 1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// FindStuck returns grading submissions whose update time is older than the
// cutoff, so the grader can reset work lost to a crash.
func (m *MongoMapper) FindStuck(ctx context.Context, cutoff time.Time) ([]*Submission, error) {
	var submissions []*Submission
	err := m.conn.Find(ctx, &submissions, bson.M{
		consts.Status:     consts.StatusGrading,
		consts.UpdateTime: bson.M{"$lt": cutoff},
	}, &options.FindOptions{})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoMapper) CountByTestID(ctx context.Context, testID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.TestID: testID})
}

func (m *MongoMapper) CountByStudentID(ctx context.Context, studentID string) (int64, error) {
	return m.conn.CountDocuments(ctx, bson.M{consts.StudentID: studentID})
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

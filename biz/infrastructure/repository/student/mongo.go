package student

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
	prefixStudentCacheKey = "cache:student"
	StudentCollectionName = "student"
)

type IMongoMapper interface {
	Insert(ctx context.Context, s *Student) error
	Update(ctx context.Context, s *Student) error
	FindOne(ctx context.Context, id string) (*Student, error)
	FindMany(ctx context.Context, search string, page, pageSize int64) ([]*Student, int64, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, StudentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, s *Student) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.CreateTime = time.Now()
		s.UpdateTime = s.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, s)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, s *Student) error {
	s.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, s.ID, bson.M{"$set": s})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Student
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{consts.ID: oid})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

// FindMany lists students sorted by name, optionally filtered by a name
// substring match.
func (m *MongoMapper) FindMany(ctx context.Context, search string, page, pageSize int64) ([]*Student, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	var students []*Student
	err = m.conn.Find(ctx, &students, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"name": 1},
	})
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

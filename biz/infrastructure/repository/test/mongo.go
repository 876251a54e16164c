package test

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
	prefixTestCacheKey = "cache:test"
	TestCollectionName = "test"
)

type IMongoMapper interface {
	Insert(ctx context.Context, t *Test) error
	Update(ctx context.Context, t *Test) error
	FindOne(ctx context.Context, id string) (*Test, error)
	FindByTitleAndDate(ctx context.Context, title, date string) (*Test, error)
	FindMany(ctx context.Context, search string, page, pageSize int64) ([]*Test, int64, error)
	Delete(ctx context.Context, id string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, TestCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, t *Test) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
		t.CreateTime = time.Now()
		t.UpdateTime = t.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, t)
	return err
}

func (m *MongoMapper) Update(ctx context.Context, t *Test) error {
	t.UpdateTime = time.Now()
	_, err := m.conn.UpdateByIDNoCache(ctx, t.ID, bson.M{"$set": t})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Test, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var t Test
	err = m.conn.FindOneNoCache(ctx, &t, bson.M{consts.ID: oid})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &t, nil
}

// FindByTitleAndDate backs the duplicate-test check.
func (m *MongoMapper) FindByTitleAndDate(ctx context.Context, title, date string) (*Test, error) {
	var t Test
	err := m.conn.FindOneNoCache(ctx, &t, bson.M{"title": title, "date": date})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &t, nil
}

// FindMany lists tests newest date first, optionally matching title or
// subject.
func (m *MongoMapper) FindMany(ctx context.Context, search string, page, pageSize int64) ([]*Test, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"subject": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	var tests []*Test
	err = m.conn.Find(ctx, &tests, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{"date": -1},
	})
	if err != nil {
		return nil, 0, err
	}
	return tests, total, nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

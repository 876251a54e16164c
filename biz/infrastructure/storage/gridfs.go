package storage

import (
	"bytes"
	"context"
	"io"
	"time"

	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoredFile is the metadata GridFS keeps alongside each blob.
type StoredFile struct {
	ID         string    `bson:"_id"`
	Filename   string    `bson:"filename"`
	Length     int64     `bson:"length"`
	UploadDate time.Time `bson:"uploadDate"`
	Metadata   FileMeta  `bson:"metadata"`
}

type FileMeta struct {
	ContentType string     `bson:"content_type"`
	ExpireAt    *time.Time `bson:"expire_at,omitempty"`
}

type Stats struct {
	TotalFiles  int64
	TotalBytes  int64
	RecentFiles int64
	OldFiles    int64
}

type IStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte, expire bool) (string, error)
	Download(ctx context.Context, fileID string) ([]byte, *StoredFile, error)
	FindOne(ctx context.Context, fileID string) (*StoredFile, error)
	Delete(ctx context.Context, fileID string) error
	FindExpired(ctx context.Context, now time.Time) ([]*StoredFile, error)
	GetStats(ctx context.Context) (*Stats, error)
	Ping(ctx context.Context) error
}

// GridFSStore keeps uploaded question papers, answer sheets and generated
// reports as GridFS blobs.
type GridFSStore struct {
	db     *mongo.Database
	bucket *gridfs.Bucket
}

func NewGridFSStore(config *config.Config) *GridFSStore {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.Mongo.URL))
	if err != nil {
		log.Error("mongo connect failed: %v", err)
		panic(err)
	}
	db := client.Database(config.Mongo.DB)
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		panic(err)
	}
	return &GridFSStore{db: db, bucket: bucket}
}

// Upload stores data and returns the generated file id. Files uploaded with
// expire=true are subject to the retention cleanup.
func (s *GridFSStore) Upload(ctx context.Context, filename, contentType string, data []byte, expire bool) (string, error) {
	meta := FileMeta{ContentType: contentType}
	if expire {
		t := time.Now().AddDate(0, 0, consts.FileRetentionDays)
		meta.ExpireAt = &t
	}
	fileID := uuid.New().String()
	opts := options.GridFSUpload().SetMetadata(meta)
	stream, err := s.bucket.OpenUploadStreamWithID(fileID, filename, opts)
	if err != nil {
		return "", err
	}
	if _, err = stream.Write(data); err != nil {
		stream.Close()
		return "", err
	}
	if err = stream.Close(); err != nil {
		return "", err
	}
	return fileID, nil
}

// Download returns the blob contents together with its stored metadata.
func (s *GridFSStore) Download(ctx context.Context, fileID string) ([]byte, *StoredFile, error) {
	f, err := s.FindOne(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	stream, err := s.bucket.OpenDownloadStream(fileID)
	if err != nil {
		return nil, nil, consts.ErrFileNotFound
	}
	defer stream.Close()
	if _, err = io.Copy(&buf, stream); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), f, nil
}

func (s *GridFSStore) FindOne(ctx context.Context, fileID string) (*StoredFile, error) {
	cursor, err := s.bucket.Find(bson.M{consts.ID: fileID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if !cursor.Next(ctx) {
		return nil, consts.ErrFileNotFound
	}
	var f StoredFile
	if err = cursor.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GridFSStore) Delete(ctx context.Context, fileID string) error {
	return s.bucket.Delete(fileID)
}

// FindExpired lists files whose retention window has passed.
func (s *GridFSStore) FindExpired(ctx context.Context, now time.Time) ([]*StoredFile, error) {
	cursor, err := s.bucket.Find(bson.M{"metadata.expire_at": bson.M{"$lt": now}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var files []*StoredFile
	for cursor.Next(ctx) {
		var f StoredFile
		if err = cursor.Decode(&f); err != nil {
			return nil, err
		}
		files = append(files, &f)
	}
	return files, cursor.Err()
}

func (s *GridFSStore) GetStats(ctx context.Context) (*Stats, error) {
	coll := s.db.Collection("fs.files")

	total, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	recentCutoff := time.Now().AddDate(0, 0, -consts.FileRetentionDays)
	recent, err := coll.CountDocuments(ctx, bson.M{"uploadDate": bson.M{"$gte": recentCutoff}})
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{consts.ID: nil, "total": bson.M{"$sum": "$length"}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var totalBytes int64
	if cursor.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
		}
		if err = cursor.Decode(&row); err != nil {
			return nil, err
		}
		totalBytes = row.Total
	}

	return &Stats{
		TotalFiles:  total,
		TotalBytes:  totalBytes,
		RecentFiles: recent,
		OldFiles:    total - recent,
	}, nil
}

// Ping verifies database connectivity for the health endpoint.
func (s *GridFSStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

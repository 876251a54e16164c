package test

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Test struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Subject     string             `bson:"subject" json:"subject"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	TotalMarks  int64              `bson:"total_marks" json:"totalMarks"`
	Rubric      string             `bson:"rubric" json:"rubric,omitempty"`
	PaperFileID string             `bson:"paper_file_id" json:"paperFileId,omitempty"`
	CreatorID   string             `bson:"creator_id" json:"creatorId"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}

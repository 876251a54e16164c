package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionScore struct {
	QuestionNo string  `bson:"question_no" json:"questionNo"`
	Awarded    float64 `bson:"awarded" json:"awarded"`
	Total      float64 `bson:"total" json:"total"`
}

type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TestID       string             `bson:"test_id" json:"testId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	AnswerFileID string             `bson:"answer_file_id" json:"answerFileId"`
	Status       string             `bson:"status" json:"status"` // submitted / grading / graded / failed

	// mutable fields have no bson omitempty: updates $set the whole
	// struct, and a dropped key would silently keep the stale value
	Score          float64         `bson:"score" json:"score"`
	MaxScore       float64         `bson:"max_score" json:"maxScore"`
	QuestionScores []QuestionScore `bson:"question_scores" json:"questionScores,omitempty"`
	Remarks        string          `bson:"remarks" json:"remarks,omitempty"`
	Strengths      string          `bson:"strengths" json:"strengths,omitempty"`
	Improvements   string          `bson:"improvements" json:"improvements,omitempty"`
	Message        string          `bson:"message" json:"message,omitempty"` // failure reason

	SubmitTime time.Time  `bson:"submit_time" json:"submitTime"`
	GradeTime  *time.Time `bson:"grade_time" json:"gradeTime,omitempty"`
	CreateTime time.Time  `bson:"create_time" json:"createTime"`
	UpdateTime time.Time  `bson:"update_time" json:"updateTime"`
}

package setting

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prompt is an editable prompt template for one stage of the AI pipeline.
type Prompt struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PromptType string             `bson:"prompt_type" json:"promptType"`
	PromptText string             `bson:"prompt_text" json:"promptText"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

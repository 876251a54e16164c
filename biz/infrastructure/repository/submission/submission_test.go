package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Updates write the whole struct through $set, so fields that were
// reset to their zero value must still appear in the marshalled
// document. A missing key would leave the previous value in Mongo.
func TestUpdateDocumentKeepsClearedFields(t *testing.T) {
	s := &Submission{
		ID:         primitive.NewObjectID(),
		TestID:     "t1",
		StudentID:  "s1",
		Status:     "submitted",
		Message:    "",
		Remarks:    "",
		SubmitTime: time.Now(),
	}

	raw, err := bson.Marshal(bson.M{"$set": s})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)

	for _, key := range []string{
		"message", "remarks", "strengths", "improvements",
		"question_scores", "score", "grade_time",
	} {
		assert.Contains(t, set, key, "field %q must be written even when empty", key)
	}
	assert.Equal(t, "", set["message"])
}

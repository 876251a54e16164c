package test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateDocumentKeepsClearedFields(t *testing.T) {
	doc := &Test{
		ID:          primitive.NewObjectID(),
		Title:       "midterm",
		Rubric:      "",
		PaperFileID: "",
		CreateTime:  time.Now(),
	}

	raw, err := bson.Marshal(bson.M{"$set": doc})
	require.NoError(t, err)

	var out bson.M
	require.NoError(t, bson.Unmarshal(raw, &out))
	set, ok := out["$set"].(bson.M)
	require.True(t, ok)

	assert.Contains(t, set, "rubric")
	assert.Contains(t, set, "paper_file_id")
	assert.Equal(t, "", set["rubric"])
}

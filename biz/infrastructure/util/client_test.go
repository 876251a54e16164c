package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContent(t *testing.T) {
	resp := map[string]interface{}{
		"choices": []interface{}{
			map[string]interface{}{
				"message": map[string]interface{}{
					"content": "Total Score: 10/10",
				},
			},
		},
	}
	content, err := extractContent(resp)
	require.NoError(t, err)
	assert.Equal(t, "Total Score: 10/10", content)
}

func TestExtractContent_Malformed(t *testing.T) {
	_, err := extractContent(map[string]interface{}{})
	assert.Error(t, err)

	_, err = extractContent(map[string]interface{}{"choices": []interface{}{}})
	assert.Error(t, err)

	_, err = extractContent(map[string]interface{}{
		"choices": []interface{}{
			map[string]interface{}{"message": map[string]interface{}{"content": 42}},
		},
	})
	assert.Error(t, err)
}

package util

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/util/log"
)

var client *AIClient

// AIClient talks to the OpenAI-compatible chat completions endpoint that
// performs OCR and grading.
type AIClient struct {
	Client *http.Client
}

func NewAIClient() *AIClient {
	timeout := time.Duration(config.GetConfig().AI.TimeoutSec) * time.Second
	return &AIClient{
		Client: &http.Client{Timeout: timeout},
	}
}

func GetAIClient() *AIClient {
	if client == nil {
		client = NewAIClient()
	}
	return client
}

// SendRequest posts a JSON body and decodes the JSON response.
func (c *AIClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("close response body failed: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var responseMap map[string]interface{}
	if err := json.Unmarshal(responseBody, &responseMap); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return responseMap, nil
}

func (c *AIClient) headers() map[string]string {
	return map[string]string{
		"Content-Type":  consts.ContentTypeJson,
		"Authorization": "Bearer " + config.GetConfig().AI.Key,
	}
}

// ChatCompletion sends a plain text prompt and returns the model output.
func (c *AIClient) ChatCompletion(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	body := map[string]interface{}{
		"model": config.GetConfig().AI.Model,
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}
	resp, err := c.SendRequest(ctx, consts.Post, config.GetConfig().AI.URL, c.headers(), body)
	if err != nil {
		return "", err
	}
	return extractContent(resp)
}

// VisionCompletion sends a prompt together with an image attachment, which
// covers OCR, rubric extraction and question extraction.
func (c *AIClient) VisionCompletion(ctx context.Context, prompt string, image []byte, contentType string, maxTokens int) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(image))
	body := map[string]interface{}{
		"model": config.GetConfig().AI.Model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
					{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
				},
			},
		},
		"max_tokens": maxTokens,
	}
	resp, err := c.SendRequest(ctx, consts.Post, config.GetConfig().AI.URL, c.headers(), body)
	if err != nil {
		return "", err
	}
	return extractContent(resp)
}

// Ping probes the API with a minimal request for the health endpoint.
func (c *AIClient) Ping(ctx context.Context) error {
	_, err := c.ChatCompletion(ctx, "Test", 5, 0)
	return err
}

func extractContent(resp map[string]interface{}) (string, error) {
	choices, ok := resp["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("response has no choices")
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("malformed choice")
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("malformed message")
	}
	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("malformed content")
	}
	return content, nil
}

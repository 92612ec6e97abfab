// Package resumeai talks to the OpenAI chat API to turn resume text into a
// structured analysis and to generate improved versions of stored analyses.
package resumeai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/Sandeep-456/Deepkalrity-assignment/resume"
)

// ErrMalformedJSON is returned when the extracted object does not decode
// into the analysis schema.
var ErrMalformedJSON = errors.New("model reply is not valid analysis JSON")

// Client implements resume.Analyzer over the OpenAI chat completions API.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Client{
		client: &client,
		model:  model,
	}
}

// Analyze extracts a structured analysis from raw resume text. One
// synchronous attempt; the reply is buffered in full before decoding.
func (c *Client) Analyze(ctx context.Context, text string) (*resume.Analysis, error) {
	prompt := fmt.Sprintf(analyzePromptTemplate, text, jsonSchema)
	return c.complete(ctx, prompt)
}

// Improve asks the model for a refined version of an existing analysis.
func (c *Client) Improve(ctx context.Context, current resume.Analysis) (*resume.Analysis, error) {
	encoded, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode current analysis: %w", err)
	}

	prompt := fmt.Sprintf(improvePromptTemplate, string(encoded), jsonSchema)
	return c.complete(ctx, prompt)
}

func (c *Client) complete(ctx context.Context, prompt string) (*resume.Analysis, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Model:       c.model,
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	return decodeAnalysis(completion.Choices[0].Message.Content)
}

// decodeAnalysis pulls the first balanced JSON object out of the reply and
// decodes it. The model is told to return only JSON but prose and code
// fences around the object are tolerated.
func decodeAnalysis(content string) (*resume.Analysis, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	var analysis resume.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	analysis.NormalizeLists()
	return &analysis, nil
}

package clues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

const suggestPrompt = `Write one short crossword clue for each word below.
Never use the word itself or an obvious derivative in its clue.
Reply ONLY with a JSON object mapping each word exactly as given to its clue, no markdown.

Words:
`

// Gemini suggests clues with a Gemini model on Vertex AI.
type Gemini struct {
	client    *genai.Client
	modelName string
}

// NewGemini creates a client using Application Default Credentials.
// Set GOOGLE_APPLICATION_CREDENTIALS to the service account key file path.
func NewGemini(ctx context.Context, projectID, region string) (*Gemini, error) {
	if projectID == "" {
		return nil, errors.New("clues: project id is required")
	}
	if region == "" {
		region = defaultRegion
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, modelName: defaultModel}, nil
}

// Suggest asks the model for one clue per word.
func (g *Gemini) Suggest(ctx context.Context, words []string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: suggestPrompt + strings.Join(words, "\n")}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.4)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	return parseSuggestions(resp.Text(), words)
}

// parseSuggestions decodes the model's JSON reply, keeping only clues for
// requested words that do not give the answer away.
func parseSuggestions(text string, words []string) (map[string]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty gemini response")
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parse clues JSON: %w", err)
	}
	upper := make(map[string]string, len(raw))
	for k, v := range raw {
		upper[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	out := make(map[string]string, len(words))
	for _, w := range words {
		clue := upper[w]
		if clue == "" || strings.Contains(strings.ToUpper(clue), w) {
			continue
		}
		out[w] = clue
	}
	return out, nil
}

// Package ai generates resume content through the Groq chat completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"
)

var _ model.ResumeGenerator = (*GroqClient)(nil)

const resumePrompt = `You are a professional resume writer. Create a detailed resume from the following user description.
Return ONLY valid JSON. No markdown. No explanation.

{
  "meta": "Resume generated for year 2025",
  "data": {
    "personalInformation": {
      "fullName": "Name",
      "email": "email@example.com",
      "phoneNumber": "Phone",
      "location": "City, Country",
      "linkedIn": null,
      "gitHub": null,
      "portfolio": null
    },
    "summary": "Professional summary",
    "skills": [{"title": "Skill", "level": "Beginner/Intermediate/Expert"}],
    "experience": [],
    "education": [],
    "projects": [],
    "certifications": [],
    "languages": [],
    "interests": [],
    "achievements": []
  }
}

User Description: `

const interviewPrompt = `You are an experienced interview coach. Generate three interview questions with strong sample answers for a candidate with the following skills.
Return ONLY valid JSON. No markdown. No explanation.

{
  "meta": "Interview prep generated",
  "skills": [],
  "questions": [{"question": "Question", "answer": "Answer", "category": "behavioral/technical/problem-solving"}],
  "total": 3
}

Skills: `

// Config holds Groq client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// GroqClient calls the Groq chat completions endpoint.
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGroqClient creates a GroqClient from config. Zero values fall back to
// the public Groq endpoint and default model.
func NewGroqClient(config Config) *GroqClient {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	chatModel := config.Model
	if chatModel == "" {
		chatModel = defaultModel
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	return &GroqClient{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		model:   chatModel,
		client:  client,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateResume produces a structured resume document from a free-form
// description. The result holds the "meta" and "data" keys of the model's
// JSON output.
func (g *GroqClient) GenerateResume(ctx context.Context, description string) (map[string]any, error) {
	document, err := g.completeJSON(ctx, resumePrompt+description)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"meta": document["meta"],
		"data": document["data"],
	}, nil
}

// GenerateInterviewQuestions produces interview prep content tailored to the
// given skills.
func (g *GroqClient) GenerateInterviewQuestions(ctx context.Context, skills []string) (map[string]any, error) {
	focus := "software engineering"
	if len(skills) > 0 {
		focus = strings.Join(skills, ", ")
	}

	document, err := g.completeJSON(ctx, interviewPrompt+focus)
	if err != nil {
		return nil, err
	}
	document["skills"] = skills

	return document, nil
}

func (g *GroqClient) completeJSON(ctx context.Context, prompt string) (map[string]any, error) {
	if strings.TrimSpace(g.apiKey) == "" {
		return nil, model.NewConfigurationError("GROQ_API_KEY not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call chat completions endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("chat completions endpoint returned status %d: %s", resp.StatusCode, detail)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("chat response contained no choices")
	}

	content := parsed.Choices[0].Message.Content
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var document map[string]any
	if err := json.Unmarshal([]byte(content), &document); err != nil {
		return nil, fmt.Errorf("failed to parse model output as JSON: %w", err)
	}

	return document, nil
}

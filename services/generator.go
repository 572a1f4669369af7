package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"coursebuilder/models"

	"github.com/go-resty/resty/v2"
)

// CourseDraft is the generated portion of a course before resources and
// persistence metadata are attached.
type CourseDraft struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Modules     []models.Module       `json:"modules"`
	Summary     *models.CourseSummary `json:"summary"`
	MCQs        []models.MCQ          `json:"mcqs"`
}

// ContentGenerator produces course drafts through the Anthropic Messages API.
// The model is asked for a single JSON object; extraction of that object from
// the free-text reply lives in ParseCourseDraft so it can be tested and
// replaced independently of the network call.
type ContentGenerator struct {
	apiKey    string
	model     string
	maxTokens int
	client    *resty.Client
}

// NewContentGenerator builds a generator. baseURL is the API root
// (overridable for tests).
func NewContentGenerator(apiKey, baseURL, model string, maxTokens int, timeout time.Duration) *ContentGenerator {
	return &ContentGenerator{
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		client:    resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate asks the model for a structured course on the topic and parses the
// reply into a draft.
func (g *ContentGenerator) Generate(ctx context.Context, topic string) (*CourseDraft, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrProviderUnavailable)
	}

	body := messagesRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages:  []message{{Role: "user", Content: buildPrompt(topic)}},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", g.apiKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/messages")
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("anthropic: %w", ErrUpstreamTimeout)
		}
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, &UpstreamError{Provider: "anthropic", Status: resp.StatusCode(), Body: resp.String()}
	}

	var reply messagesResponse
	if err := json.Unmarshal(resp.Body(), &reply); err != nil {
		return nil, fmt.Errorf("anthropic: decode response: %w", err)
	}

	var text string
	for _, block := range reply.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, fmt.Errorf("%w: response contained no text block", ErrParse)
	}

	return ParseCourseDraft(text)
}

var codeFenceRe = regexp.MustCompile("```(?:json)?\\s*")

// ParseCourseDraft extracts the JSON course object from raw model output.
// Markdown code fences are stripped, the span from the first "{" to the last
// "}" is parsed, and the required top-level fields are checked.
func ParseCourseDraft(raw string) (*CourseDraft, error) {
	cleaned := codeFenceRe.ReplaceAllString(raw, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var draft CourseDraft
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var missing []string
	if draft.Title == "" {
		missing = append(missing, "title")
	}
	if draft.Description == "" {
		missing = append(missing, "description")
	}
	if len(draft.Modules) == 0 {
		missing = append(missing, "modules")
	}
	if draft.Summary == nil {
		missing = append(missing, "summary")
	}
	if len(draft.MCQs) == 0 {
		missing = append(missing, "mcqs")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidDraft, strings.Join(missing, ", "))
	}

	return &draft, nil
}

func buildPrompt(topic string) string {
	return fmt.Sprintf(`You are an expert course designer. Create a comprehensive learning course for the topic: "%s"

Please provide a well-structured course in JSON format with:

1. **Course Title**: Engaging and descriptive (50-80 characters)
2. **Course Description**: Clear overview (2-3 sentences, 100-200 characters)
3. **Learning Modules** (3-5 modules):
   - Each module should have: id (integer), title, duration (e.g., "2 hours"), description
4. **Summary**:
   - Overview: 3-4 sentences explaining the concept clearly
   - Key Points: 4-6 bullet points of main learning objectives
   - When to Use: Practical applications and scenarios
5. **MCQs** (5 challenging questions):
   - Each with: id (integer), question, 4 options, correct answer index (0-3), explanation

Return ONLY valid JSON in this exact structure:
{
    "title": "Course Title Here",
    "description": "Course description here",
    "modules": [
        {
            "id": 1,
            "title": "Module Title",
            "duration": "2 hours",
            "description": "What students will learn"
        }
    ],
    "summary": {
        "overview": "Detailed overview here",
        "keyPoints": [
            "Key point 1",
            "Key point 2"
        ],
        "whenToUse": "Practical applications"
    },
    "mcqs": [
        {
            "id": 1,
            "question": "Question text?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct": 0,
            "explanation": "Why this is correct"
        }
    ]
}

Make the content educational, accurate, and suitable for beginners to intermediate learners.`, topic)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// SuggestedTask is a maintenance chore proposed for an item. It is never
// stored; the caller may turn it into a real task.
type SuggestedTask struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    models.TaskPriority    `json:"priority"`
	Interval    *int                   `json:"interval"`
	Unit        *models.RecurrenceUnit `json:"unit"`
}

// TaskSuggester proposes upkeep tasks for an item.
type TaskSuggester interface {
	SuggestMaintenance(ctx context.Context, item *models.Item) ([]SuggestedTask, error)
}

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// SuggestMaintenance asks the model for recurring upkeep of an item
func (s *AIService) SuggestMaintenance(ctx context.Context, item *models.Item) ([]SuggestedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	var details []string
	for label, value := range map[string]string{
		"Name":         item.Name,
		"Category":     item.Category,
		"Manufacturer": item.Manufacturer,
		"Model":        item.ModelNumber,
		"Description":  item.Description,
	} {
		if strings.TrimSpace(value) != "" {
			details = append(details, fmt.Sprintf("%s: %s", label, value))
		}
	}

	prompt := fmt.Sprintf(`You are a home maintenance assistant. Suggest routine maintenance tasks for the household item below.

Item:
%s

Return a JSON array of tasks in this shape:
[
  {
    "title": "short imperative title",
    "description": "what to do and why",
    "priority": "LOW | MEDIUM | HIGH | URGENT",
    "interval": 3,
    "unit": "DAILY | WEEKLY | MONTHLY | YEARLY"
  }
]

Rules:
- Return at most 10 tasks; return [] if the item needs no upkeep
- interval is a positive integer; use null for interval and unit for one-off tasks
- Return only JSON, no prose`, strings.Join(details, "\n"))

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimSuffix(strings.TrimPrefix(content, "```json"), "```")

	var tasks []SuggestedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return tasks, nil
}

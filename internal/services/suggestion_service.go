package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/constants"
	"github.com/yukikurage/home-inventory-api/internal/models"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAINoValidTasks         = errors.New("no valid tasks could be created from AI output")
)

// SuggestionService proposes maintenance tasks for items.
type SuggestionService struct {
	resolver  *access.Resolver
	suggester TaskSuggester
	log       logger.Logger
}

// NewSuggestionService creates a new SuggestionService. A nil suggester
// disables suggestions.
func NewSuggestionService(resolver *access.Resolver, suggester TaskSuggester) *SuggestionService {
	return &SuggestionService{
		resolver:  resolver,
		suggester: suggester,
		log:       logger.New("suggestionService"),
	}
}

// SuggestTasks returns cleaned-up suggestions for an item the user may read.
// Nothing is stored.
func (s *SuggestionService) SuggestTasks(ctx context.Context, itemID, userID string) ([]SuggestedTask, error) {
	if s.suggester == nil {
		return nil, ErrAIServiceNotConfigured
	}

	item, err := s.resolver.Item(ctx, userID, itemID, access.Read)
	if err != nil {
		return nil, storeErr("suggest tasks", err)
	}

	raw, err := s.suggester.SuggestMaintenance(ctx, item)
	if err != nil {
		s.log.Function("SuggestTasks").Er("suggestion request failed", err, "itemID", itemID)
		return nil, fmt.Errorf("failed to generate tasks: %w", err)
	}

	valid := make([]SuggestedTask, 0, len(raw))
	for _, t := range raw {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if !t.Priority.Valid() {
			t.Priority = models.TaskPriorityMedium
		}
		if t.Interval == nil || *t.Interval <= 0 || t.Unit == nil || !t.Unit.Valid() {
			t.Interval, t.Unit = nil, nil
		}
		valid = append(valid, t)
		if len(valid) == constants.MaxSuggestedTasks {
			break
		}
	}

	if len(valid) == 0 {
		return nil, ErrAINoValidTasks
	}
	return valid, nil
}

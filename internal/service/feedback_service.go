package service

import (
	"context"
	"fmt"
	"strings"

	"feedboard/internal/model"
	"feedboard/internal/repository"
)

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock

type FeedbackListParams struct {
	Rating *int
	Sort   string
}

type FeedbackService interface {
	Submit(ctx context.Context, message string, rating int) (model.FeedbackEntry, error)
	List(ctx context.Context, params FeedbackListParams) ([]model.FeedbackEntry, error)
}

type feedbackService struct {
	feedback repository.FeedbackRepository
}

func NewFeedbackService(feedback repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedback: feedback}
}

func (s *feedbackService) Submit(ctx context.Context, message string, rating int) (model.FeedbackEntry, error) {
	if message == "" {
		return model.FeedbackEntry{}, fmt.Errorf("%w: 'message' must be non-empty", ErrInvalid)
	}
	return s.feedback.Insert(ctx, message, rating)
}

func (s *feedbackService) List(ctx context.Context, params FeedbackListParams) ([]model.FeedbackEntry, error) {
	filter := repository.FeedbackListFilter{
		Rating: params.Rating,
		Sort:   normalizeSort(params.Sort),
	}
	return s.feedback.List(ctx, filter)
}

// normalizeSort maps anything that is not "asc" to descending. Unrecognized
// values are accepted and coerced rather than rejected.
func normalizeSort(sort string) repository.SortDirection {
	if strings.EqualFold(sort, "asc") {
		return repository.SortAsc
	}
	return repository.SortDesc
}

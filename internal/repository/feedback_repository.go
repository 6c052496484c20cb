package repository

import (
	"context"
	"fmt"
	"time"

	"feedboard/internal/model"
	"feedboard/internal/snowflake"
)

//go:generate mockgen -source=feedback_repository.go -destination=mock/feedback_repository_mock.go -package=mock

// SortDirection is the ORDER BY direction. It is a closed two-value set so
// client input never reaches the query text.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type FeedbackListFilter struct {
	Rating *int
	Sort   SortDirection
}

type FeedbackRepository interface {
	Insert(ctx context.Context, message string, rating int) (model.FeedbackEntry, error)
	List(ctx context.Context, filter FeedbackListFilter) ([]model.FeedbackEntry, error)
}

type feedbackRepository struct {
	db dbtx
}

func NewFeedbackRepository(db dbtx) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Insert(ctx context.Context, message string, rating int) (model.FeedbackEntry, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO feedback (id, message, rating, created_at) VALUES (?, ?, ?, ?)`,
		id,
		message,
		rating,
		formatTime(now),
	)
	if err != nil {
		return model.FeedbackEntry{}, fmt.Errorf("insert feedback: %w", err)
	}

	return model.FeedbackEntry{
		ID:        id,
		Message:   message,
		Rating:    rating,
		CreatedAt: now,
	}, nil
}

func (r *feedbackRepository) List(ctx context.Context, filter FeedbackListFilter) ([]model.FeedbackEntry, error) {
	var args []any
	query := `SELECT id, message, rating, created_at FROM feedback`

	if filter.Rating != nil {
		query += ` WHERE rating = ?`
		args = append(args, *filter.Rating)
	}

	dir := filter.Sort
	if dir != SortAsc {
		dir = SortDesc
	}
	// id tie-break follows the primary direction so entries inserted within
	// the timestamp resolution still come back in insertion order.
	query += fmt.Sprintf(` ORDER BY created_at %s, id %s`, dir, dir)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var entries []model.FeedbackEntry
	for rows.Next() {
		var entry model.FeedbackEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.Message, &entry.Rating, &createdAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		entry.CreatedAt, _ = parseTime(createdAt)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	return entries, nil
}

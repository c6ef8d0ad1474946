package plateful

import (
	"context"
	"fmt"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/transport"
)

// FeedbackService manages ratings users leave on menu items.
type FeedbackService struct {
	client *Client
}

// FeedbackRecord is one rating as stored by the backend. Item and Rating are
// only populated by endpoints that return them.
type FeedbackRecord struct {
	Feedback string `json:"feedback"`
	Item     string `json:"item"`
	Rating   int    `json:"rating"`
}

// Submit records a new rating and returns the feedback identifier.
func (s *FeedbackService) Submit(ctx context.Context, author, item string, rating int) (string, error) {
	raw, err := s.client.core.Call(ctx, "/Feedback/submitFeedback", map[string]any{
		"author": author,
		"item":   item,
		"rating": rating,
	}, transport.Mutating())
	if err != nil {
		return "", fmt.Errorf("submit feedback: %w", err)
	}

	var out struct {
		Feedback any `json:"feedback"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("submit feedback: %w", err)
	}
	id, ok := coerceString(out.Feedback)
	if !ok {
		return "", fmt.Errorf("submit feedback: %w", apierr.MalformedError("no feedback returned", 0))
	}
	return id, nil
}

// Update replaces the rating the author left on item.
func (s *FeedbackService) Update(ctx context.Context, author, item string, newRating int) (string, error) {
	raw, err := s.client.core.Call(ctx, "/Feedback/updateFeedback", map[string]any{
		"author":    author,
		"item":      item,
		"newRating": newRating,
	}, transport.Mutating())
	if err != nil {
		return "", fmt.Errorf("update feedback: %w", err)
	}

	var out struct {
		UpdatedFeedback any `json:"updatedFeedback"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("update feedback: %w", err)
	}
	id, ok := coerceString(out.UpdatedFeedback)
	if !ok {
		return "", fmt.Errorf("update feedback: %w", apierr.MalformedError("no updated feedback returned", 0))
	}
	return id, nil
}

// Delete removes the rating the author left on item.
func (s *FeedbackService) Delete(ctx context.Context, author, item string) error {
	if _, err := s.client.core.Call(ctx, "/Feedback/deleteFeedback", map[string]any{
		"author": author,
		"item":   item,
	}, transport.Mutating()); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

// Get returns the ratings the author left on item.
func (s *FeedbackService) Get(ctx context.Context, author, item string) ([]FeedbackRecord, error) {
	raw, err := s.client.core.Call(ctx, "/Feedback/_getFeedback", map[string]any{
		"author": author,
		"item":   item,
	})
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	var records []FeedbackRecord
	if err := transport.Decode(raw, &records); err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return records, nil
}

// GetAllUserRatings returns every rating the author left, across all items.
func (s *FeedbackService) GetAllUserRatings(ctx context.Context, author string) ([]FeedbackRecord, error) {
	raw, err := s.client.core.Call(ctx, "/Feedback/_getAllUserRatings", map[string]any{"author": author})
	if err != nil {
		return nil, fmt.Errorf("get all user ratings: %w", err)
	}

	var records []FeedbackRecord
	if err := transport.Decode(raw, &records); err != nil {
		return nil, fmt.Errorf("get all user ratings: %w", err)
	}
	return records, nil
}

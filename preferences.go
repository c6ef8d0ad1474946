package plateful

import (
	"context"
	"fmt"

	"github.com/oliviarmunoz/plateful-go/transport"
)

// TastePreferencesService manages a user's liked and disliked dishes.
type TastePreferencesService struct {
	client *Client
}

// AddLikedDish marks a dish as liked by the user.
func (s *TastePreferencesService) AddLikedDish(ctx context.Context, user, dish string) error {
	return s.mutatePreference(ctx, "/UserTastePreferences/addLikedDish", user, dish)
}

// RemoveLikedDish removes a dish from the user's liked list.
func (s *TastePreferencesService) RemoveLikedDish(ctx context.Context, user, dish string) error {
	return s.mutatePreference(ctx, "/UserTastePreferences/removeLikedDish", user, dish)
}

// AddDislikedDish marks a dish as disliked by the user.
func (s *TastePreferencesService) AddDislikedDish(ctx context.Context, user, dish string) error {
	return s.mutatePreference(ctx, "/UserTastePreferences/addDislikedDish", user, dish)
}

// RemoveDislikedDish removes a dish from the user's disliked list.
func (s *TastePreferencesService) RemoveDislikedDish(ctx context.Context, user, dish string) error {
	return s.mutatePreference(ctx, "/UserTastePreferences/removeDislikedDish", user, dish)
}

// GetLikedDishes returns the user's liked dishes in backend order.
func (s *TastePreferencesService) GetLikedDishes(ctx context.Context, user string) ([]string, error) {
	return s.listDishes(ctx, "/UserTastePreferences/_getLikedDishes", user)
}

// GetDislikedDishes returns the user's disliked dishes in backend order.
func (s *TastePreferencesService) GetDislikedDishes(ctx context.Context, user string) ([]string, error) {
	return s.listDishes(ctx, "/UserTastePreferences/_getDislikedDishes", user)
}

func (s *TastePreferencesService) mutatePreference(ctx context.Context, path, user, dish string) error {
	if _, err := s.client.core.Call(ctx, path, map[string]any{"user": user, "dish": dish}, transport.Mutating()); err != nil {
		return fmt.Errorf("update taste preference: %w", err)
	}
	return nil
}

func (s *TastePreferencesService) listDishes(ctx context.Context, path, user string) ([]string, error) {
	raw, err := s.client.core.Call(ctx, path, map[string]any{"user": user})
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	var entries []struct {
		Dishes []string `json:"dishes"`
	}
	if err := transport.Decode(raw, &entries); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	var dishes []string
	for _, entry := range entries {
		dishes = append(dishes, entry.Dishes...)
	}
	return dishes, nil
}

package plateful

import (
	"context"
	"fmt"

	"github.com/oliviarmunoz/plateful-go/apierr"
	"github.com/oliviarmunoz/plateful-go/transport"
)

// MenuService manages restaurant menus. Recommendation ranking happens
// entirely on the backend; the client treats it as opaque.
type MenuService struct {
	client *Client
}

// MenuItem is one entry of a restaurant's menu.
type MenuItem struct {
	ID          string  `json:"menuItem"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MenuItemUpdate carries the optional fields of UpdateMenuItem. Nil fields
// are left unchanged on the backend.
type MenuItemUpdate struct {
	Description *string
	Price       *float64
}

// AddMenuItem creates a menu item and returns its identifier. When an item
// with the same name already exists at the restaurant, the backend answers
// with an application error recognizable via apierr.IsDuplicate.
func (s *MenuService) AddMenuItem(ctx context.Context, restaurant, name, description string, price float64) (string, error) {
	raw, err := s.client.core.Call(ctx, "/RestaurantMenu/addMenuItem", map[string]any{
		"restaurant":  restaurant,
		"name":        name,
		"description": description,
		"price":       price,
	}, transport.Mutating())
	if err != nil {
		return "", fmt.Errorf("add menu item: %w", err)
	}

	var out struct {
		MenuItem any `json:"menuItem"`
	}
	if err := transport.Decode(raw, &out); err != nil {
		return "", fmt.Errorf("add menu item: %w", err)
	}
	id, ok := coerceString(out.MenuItem)
	if !ok {
		return "", fmt.Errorf("add menu item: %w", apierr.MalformedError("no menu item returned", 0))
	}
	return id, nil
}

// UpdateMenuItem changes the description and/or price of an item.
func (s *MenuService) UpdateMenuItem(ctx context.Context, menuItem string, update MenuItemUpdate) error {
	fields := map[string]any{"menuItem": menuItem}
	if update.Description != nil {
		fields["newDescription"] = *update.Description
	}
	if update.Price != nil {
		fields["newPrice"] = *update.Price
	}

	if _, err := s.client.core.Call(ctx, "/RestaurantMenu/updateMenuItem", fields, transport.Mutating()); err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// RemoveMenuItem deletes a menu item.
func (s *MenuService) RemoveMenuItem(ctx context.Context, menuItem string) error {
	if _, err := s.client.core.Call(ctx, "/RestaurantMenu/removeMenuItem", map[string]any{"menuItem": menuItem}, transport.Mutating()); err != nil {
		return fmt.Errorf("remove menu item: %w", err)
	}
	return nil
}

// GetMenuItems returns a restaurant's menu in backend order.
func (s *MenuService) GetMenuItems(ctx context.Context, restaurant string) ([]MenuItem, error) {
	raw, err := s.client.core.Call(ctx, "/RestaurantMenu/_getMenuItems", map[string]any{"restaurant": restaurant})
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}

	var items []MenuItem
	if err := transport.Decode(raw, &items); err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}
	return items, nil
}

// GetMenuItemDetails returns the details of a single item. The backend
// answers with a list; the first well-formed entry wins.
func (s *MenuService) GetMenuItemDetails(ctx context.Context, menuItem string) (MenuItem, error) {
	raw, err := s.client.core.Call(ctx, "/RestaurantMenu/_getMenuItemDetails", map[string]any{"menuItem": menuItem})
	if err != nil {
		return MenuItem{}, fmt.Errorf("get menu item details: %w", err)
	}

	var entries []MenuItem
	if err := transport.Decode(raw, &entries); err != nil {
		return MenuItem{}, fmt.Errorf("get menu item details: %w", err)
	}
	for _, entry := range entries {
		if entry.Name != "" {
			entry.ID = menuItem
			return entry, nil
		}
	}
	return MenuItem{}, fmt.Errorf("get menu item details: %w", apierr.MalformedError("no menu item details returned", 0))
}

// GetRecommendation returns ranked dish recommendations for a user at a
// restaurant.
func (s *MenuService) GetRecommendation(ctx context.Context, restaurant, user string) ([]string, error) {
	raw, err := s.client.core.Call(ctx, "/RestaurantMenu/_getRecommendation", map[string]any{
		"restaurant": restaurant,
		"user":       user,
	})
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}

	var entries []struct {
		Recommendation string `json:"recommendation"`
		Error          string `json:"error"`
	}
	if err := transport.Decode(raw, &entries); err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}

	var recommendations []string
	for _, entry := range entries {
		if entry.Error != "" {
			return nil, fmt.Errorf("get recommendation: %w", apierr.ApplicationError(entry.Error, 0))
		}
		if entry.Recommendation != "" {
			recommendations = append(recommendations, entry.Recommendation)
		}
	}
	return recommendations, nil
}

package cart

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/labellecuisine/ordering-backend/pkg/errors"
)

// Service exposes the full cart surface presentation components may use:
// the four mutators plus read access to lines and derived totals.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	AddItem(ctx context.Context, sessionID string, item ItemInput) (Cart, error)
	RemoveItem(ctx context.Context, sessionID string, id int) (Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, id, quantity int) (Cart, error)
	Clear(ctx context.Context, sessionID string) (Cart, error)
}

type service struct {
	snapshots SnapshotStore
}

// NewService builds a cart service over the given snapshot store.
func NewService(snapshots SnapshotStore) (Service, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	return &service{snapshots: snapshots}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *service) AddItem(ctx context.Context, sessionID string, item ItemInput) (Cart, error) {
	if item.ID <= 0 {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}
	if strings.TrimSpace(item.Name) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if item.Price.IsNegative() {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "item price cannot be negative")
	}

	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.AddItem(item)
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, id int) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.RemoveItem(id)
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, id, quantity int) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.UpdateQuantity(id, quantity)
	})
}

func (s *service) Clear(ctx context.Context, sessionID string) (Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) {
		c.Clear()
	})
}

func (s *service) load(ctx context.Context, sessionID string) (Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	lines, err := s.snapshots.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return New(lines), nil
}

// mutate applies fn to the rehydrated cart and writes the snapshot back
// before returning, so every mutation is durable the moment it completes.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Cart)) (Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	fn(&c)

	if err := s.snapshots.Save(ctx, sessionID, c.lines); err != nil {
		return Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return c, nil
}

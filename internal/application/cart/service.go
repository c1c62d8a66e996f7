package cart

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles cart business operations for a session
type Service struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
}

// NewService creates a new cart Service
func NewService(cartRepo cart.Repository, productRepo catalog.ProductRepository) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the session's cart with live prices and the running total
func (s *Service) Get(ctx context.Context, sessionID string) (*CartResponse, error) {
	lines, err := s.cartRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	response := ToCartResponse(lines)
	return &response, nil
}

// AddItem adds a product to the cart. Adding a product that is already
// in the cart increments the existing line's quantity.
func (s *Service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*CartResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	if _, err := s.cartRepo.Upsert(ctx, req.ProductID, sessionID, req.Quantity); err != nil {
		return nil, err
	}

	return s.Get(ctx, sessionID)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
// The line must belong to the caller's session.
func (s *Service) UpdateItem(ctx context.Context, sessionID string, lineID int64, req UpdateItemRequest) (*CartResponse, error) {
	line, err := s.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line.SessionID != sessionID {
		// do not leak other sessions' line IDs
		return nil, shared.ErrNotFound
	}

	if req.Quantity <= 0 {
		if _, err := s.cartRepo.Delete(ctx, lineID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.cartRepo.UpdateQuantity(ctx, lineID, req.Quantity); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, sessionID)
}

// RemoveItem deletes a line from the session's cart
func (s *Service) RemoveItem(ctx context.Context, sessionID string, lineID int64) (*CartResponse, error) {
	line, err := s.cartRepo.FindByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if line.SessionID != sessionID {
		return nil, shared.ErrNotFound
	}

	if _, err := s.cartRepo.Delete(ctx, lineID); err != nil {
		return nil, err
	}

	return s.Get(ctx, sessionID)
}

// Clear removes every line from the session's cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.cartRepo.ClearSession(ctx, sessionID)
}

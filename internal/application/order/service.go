package order

import (
	"context"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles order business operations
type Service struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
}

// NewService creates a new order Service
func NewService(orderRepo order.Repository, cartRepo cart.Repository) *Service {
	return &Service{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// Checkout materializes the session's cart into an order. Unit prices
// are frozen at the current catalog price; the cart is cleared in the
// same transaction that creates the order. accountID is nil for guest
// checkout.
func (s *Service) Checkout(ctx context.Context, sessionID string, accountID *int64, req CheckoutRequest) (*OrderResponse, error) {
	cartLines, err := s.cartRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartLines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	lines := make([]order.Line, 0, len(cartLines))
	for i := range cartLines {
		line, err := order.NewLine(cartLines[i].ProductID, cartLines[i].Quantity, cartLines[i].ProductPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	o, err := order.NewOrder(accountID, req.ShippingAddress, lines)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateFromCart(ctx, o, sessionID); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// GetByID retrieves an order with its lines
func (s *Service) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// GetByIDForAccount retrieves an order only if it belongs to the account
func (s *Service) GetByIDForAccount(ctx context.Context, id, accountID int64) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.AccountID == nil || *o.AccountID != accountID {
		// hide other accounts' orders entirely
		return nil, shared.ErrNotFound
	}

	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves all orders, newest first
func (s *Service) List(ctx context.Context, filter ListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := s.toDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListForAccount retrieves an account's orders, newest first
func (s *Service) ListForAccount(ctx context.Context, accountID int64, filter ListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := s.toDomainFilter(filter)

	orders, err := s.orderRepo.FindByAccount(ctx, accountID, domainFilter)
	if err != nil {
		return nil, err
	}

	countFilter := domainFilter
	countFilter.Filters["account_id"] = accountID
	total, err := s.orderRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateStatus changes an order's status
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(order.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

func (s *Service) toDomainFilter(filter ListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	return domainFilter
}

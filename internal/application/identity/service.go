package identity

import (
	"context"
	"errors"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles account and authentication business operations
type Service struct {
	accountRepo identity.Repository
}

// NewService creates a new identity Service
func NewService(accountRepo identity.Repository) *Service {
	return &Service{accountRepo: accountRepo}
}

// Register creates a regular user account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	account, err := identity.NewAccount(req.Username, req.Email, req.Password, identity.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// Authenticate verifies a username/password pair and returns the
// account. Unknown usernames and wrong passwords produce the same
// error so login failures never reveal which part was wrong.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
		}
		return nil, err
	}

	if !account.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// GetByID retrieves an account by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// List retrieves accounts with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (*shared.Paginated[AccountResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "id",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Role != "" {
		domainFilter.Filters["role"] = filter.Role
	}

	accounts, err := s.accountRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.accountRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToAccountResponses(accounts), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Create creates an account with an explicit role (admin operation)
func (s *Service) Create(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error) {
	exists, err := s.accountRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	account, err := identity.NewAccount(req.Username, req.Email, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// Update applies a partial update to an account (admin operation).
// actorID is the account performing the change: an admin cannot demote
// themselves, which keeps at least one reachable admin.
func (s *Service) Update(ctx context.Context, id, actorID int64, req UpdateAccountRequest) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := account.UpdateEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		if err := account.ChangePassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if req.Role != nil {
		newRole := identity.Role(*req.Role)
		if id == actorID && account.IsAdmin() && newRole != identity.RoleAdmin {
			return nil, shared.NewDomainError("FORBIDDEN", "Admins cannot demote their own account")
		}
		if err := account.ChangeRole(newRole); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}

// Delete removes an account (admin operation). Admins cannot delete
// their own account.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	if id == actorID {
		return shared.NewDomainError("FORBIDDEN", "Admins cannot delete their own account")
	}

	return s.accountRepo.Delete(ctx, id)
}

package user

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "user-rest-service/internal/domain/user"
	apperrors "user-rest-service/pkg/errors"
	"user-rest-service/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// MaxPageSize is the largest page size a caller may request.
const MaxPageSize = 100

// Repository defines the interface for user data access operations.
// It abstracts the data layer, allowing different implementations
// (e.g., in-memory, SQL) to be used interchangeably. Implementations
// are trusted: Create and Update do not re-validate fields or re-check
// email uniqueness.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)                  // Create a new user, assigning its id
	GetByID(ctx context.Context, id int64) (*domain.User, error)                       // Retrieve user by ID; nil when absent
	Update(ctx context.Context, id int64, u *domain.User) (*domain.User, error)        // Overwrite an existing user; nil when absent
	Delete(ctx context.Context, id int64) (bool, error)                                // Delete user by ID
	List(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error)      // List one page of users plus the total count
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)      // Case-insensitive uniqueness probe
}

// Service implements the business logic for user management operations.
// It provides a clean separation between the transport layer and data layer.
type Service struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// fieldMessages converts validator.ValidationErrors into human-readable
// rule messages, one per violated rule, preserving field order. Every
// failing rule is reported; nothing short-circuits.
func fieldMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Field() {
		case "Name":
			if e.Tag() == "required" {
				messages = append(messages, "name is required")
			} else {
				messages = append(messages, fmt.Sprintf("name must be between %d and %d characters",
					validation.MinNameLength, validation.MaxNameLength))
			}
		case "Age":
			messages = append(messages, fmt.Sprintf("age must be between %d and %d",
				validation.MinAge, validation.MaxAge))
		case "Email":
			if e.Tag() == "required" {
				messages = append(messages, "email is required")
			} else {
				messages = append(messages, "email must be a valid email address")
			}
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return messages
}

// canonicalName trims surrounding whitespace from a name.
func canonicalName(name string) string {
	return strings.TrimSpace(name)
}

// canonicalEmail trims and lower-cases an email address.
func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates a new user after validating the request and checking
// email uniqueness. All violated rules are collected and returned together
// in a single ValidationError.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	in.Name = canonicalName(in.Name)
	in.Email = canonicalEmail(in.Email)

	var messages []string
	if err := s.validate.Struct(in); err != nil {
		messages = fieldMessages(err)
	}

	if in.Email != "" {
		exists, err := s.repo.EmailExists(ctx, in.Email, 0)
		if err != nil {
			s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
		}
		if exists {
			messages = append(messages, "email already exists")
		}
	}

	if len(messages) > 0 {
		s.log.Warn("create user validation failed", zap.Strings("errors", messages))
		return nil, apperrors.NewValidationError(messages...)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Age:   in.Age,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &User{ID: created.ID, Name: created.Name, Age: created.Age, Email: created.Email}, nil
}

// UpdateUser overwrites an existing user after validating the request and
// checking email uniqueness. The target's own current email is excluded
// from the duplicate check so a user may keep their email unchanged.
func (s *Service) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("name", in.Name), zap.String("email", in.Email))

	if in.ID <= 0 {
		s.log.Warn("update user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewInvalidArgumentError("user id must be a positive integer")
	}

	in.Name = canonicalName(in.Name)
	in.Email = canonicalEmail(in.Email)

	var messages []string
	if err := s.validate.Struct(in); err != nil {
		messages = fieldMessages(err)
	}

	if in.Email != "" {
		exists, err := s.repo.EmailExists(ctx, in.Email, in.ID)
		if err != nil {
			s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
			return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
		}
		if exists {
			messages = append(messages, "email already exists")
		}
	}

	if len(messages) > 0 {
		s.log.Warn("update user validation failed", zap.Int64("id", in.ID), zap.Strings("errors", messages))
		return nil, apperrors.NewValidationError(messages...)
	}

	updated, err := s.repo.Update(ctx, in.ID, &domain.User{
		Name:  in.Name,
		Age:   in.Age,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if updated == nil {
		s.log.Warn("user not found for update", zap.Int64("id", in.ID))
		return nil, apperrors.NewNotFoundError("user", in.ID)
	}

	return &User{ID: updated.ID, Name: updated.Name, Age: updated.Age, Email: updated.Email}, nil
}

// DeleteUser deletes a user after validating the user ID.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		s.log.Warn("delete user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return apperrors.NewInvalidArgumentError("user id must be a positive integer")
	}

	deleted, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	if !deleted {
		s.log.Warn("user not found for delete", zap.Int64("id", in.ID))
		return apperrors.NewNotFoundError("user", in.ID)
	}

	return nil
}

// GetUser retrieves a user by ID after validating the request.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	if in.ID <= 0 {
		s.log.Warn("get user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, apperrors.NewInvalidArgumentError("user id must be a positive integer")
	}

	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user", in.ID)
	}

	return &User{ID: u.ID, Name: u.Name, Age: u.Age, Email: u.Email}, nil
}

// ListUsers retrieves a paginated list of users. An out-of-range page
// yields an empty user list with correct totals, not an error.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	if in.Page <= 0 {
		s.log.Warn("list users validation failed", zap.Int64("page", in.Page), zap.String("reason", "invalid page"))
		return nil, apperrors.NewInvalidArgumentError("page must be a positive integer")
	}
	if in.PageSize < 1 || in.PageSize > MaxPageSize {
		s.log.Warn("list users validation failed", zap.Int64("page_size", in.PageSize), zap.String("reason", "invalid page size"))
		return nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("pageSize must be between 1 and %d", MaxPageSize))
	}

	s.log.Info("listing users", zap.Int64("page", in.Page), zap.Int64("page_size", in.PageSize))

	domainUsers, total, err := s.repo.List(ctx, in.Page, in.PageSize)
	if err != nil {
		s.log.Error("failed to list users", zap.Int64("page", in.Page), zap.Int64("page_size", in.PageSize), zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Age:   du.Age,
			Email: du.Email,
		}
	}

	p := domain.NewPagination(total, in.Page, in.PageSize)

	return &ListUsersResponse{
		Users: users,
		Pagination: &Pagination{
			TotalUsers: p.TotalUsers,
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalPages: p.TotalPages,
		},
	}, nil
}

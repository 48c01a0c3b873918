package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/apperrors"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	portsrepo "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/repositories"
	portssvc "github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/ports/services"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/dto"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/platform/config"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils"
)

// userService provides user management and authentication.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user, hash); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, req.Username)
		}
		s.LogError(ctx, err, "Failed to save user", "username", req.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID, "username", req.Username)
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", "user_id", userID)
		}
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", username, err)
	}
	return user, nil
}

// ListUsers retrieves a paginated list of users.
func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	users, nextToken, err := s.userRepo.ListUsers(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	resp := dto.ToListUserResponse(users, nextToken)
	return &resp, nil
}

// UpdateUser updates an existing user.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	updated := false
	if req.Name != nil {
		user.Name = *req.Name
		updated = true
	}
	if req.Email != nil {
		user.Email = *req.Email
		updated = true
	}
	if !updated {
		return user, nil
	}

	now := time.Now().UTC()
	user.LastUpdatedAt = now
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	storedHash, err := s.userRepo.FindPasswordHashByUsername(ctx, user.Username)
	if err != nil {
		return fmt.Errorf("failed to fetch credentials for user %s: %w", userID, err)
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, storedHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrForbidden)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	if err := s.userRepo.UpdateUserPassword(ctx, userID, newHash, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update password", "user_id", userID)
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Password changed", "user_id", userID)
	return nil
}

// DeleteUser marks a user as deleted (soft delete).
func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	now := time.Now().UTC()
	if err := s.userRepo.DeleteUser(ctx, userID, requestingUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete user", "user_id", userID)
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User deleted", "user_id", userID)
	return nil
}

// AuthenticateUser verifies a username and password pair. Lookup failures and
// bad passwords both come back as ErrUnauthorized so callers cannot probe for
// valid usernames.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to find user for authentication", "username", username)
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	storedHash, err := s.userRepo.FindPasswordHashByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credentials: %w", err)
	}
	if !utils.CheckPasswordHash(password, storedHash) {
		s.LogWarn(ctx, "Login attempt with wrong password", "username", username)
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GenerateAccessToken issues a signed JWT for an authenticated user.
func (s *userService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", "user_id", user.UserID)
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

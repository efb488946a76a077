package service

import (
	"context"
	"fmt"
	"time"

	"rice-shop/internal/auth"
	"rice-shop/internal/model"
	"rice-shop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the hash strength used for seeded accounts.
const bcryptCost = 10

// adminService implements AdminService.
type adminService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.TokenManager
	logger    zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(adminRepo repository.AdminRepository, tokens *auth.TokenManager, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger.With().Str("service", "admin").Logger(),
	}
}

// Login verifies credentials and issues a session token. Unknown
// usernames and wrong passwords produce the same rejection.
func (s *adminService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Username and password required")
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if admin == nil {
		s.logger.Warn().Str("username", req.Username).Msg("login attempt for unknown username")
		return nil, model.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("login attempt with wrong password")
		return nil, model.ErrBadCredentials
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin logged in")

	return &model.LoginResponse{
		Token:    token,
		Username: admin.Username,
	}, nil
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (s *adminService) ChangePassword(ctx context.Context, adminID uuid.UUID, req *model.ChangePasswordRequest) error {
	if req == nil || req.OldPassword == "" || req.NewPassword == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Old and new password required")
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	if admin == nil {
		return model.ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.OldPassword)); err != nil {
		return model.ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin changed own password")
	return nil
}

// ListUsers retrieves all admin accounts.
func (s *adminService) ListUsers(ctx context.Context) ([]model.AdminUser, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// CreateUser adds a new admin account.
func (s *adminService) CreateUser(ctx context.Context, req *model.CreateAdminRequest) (*model.AdminUser, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Username and password required")
	}

	existing, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	if existing != nil {
		return nil, model.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := &model.AdminUser{
		ID:        uuid.New(),
		Username:  req.Username,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin account created")
	return admin, nil
}

// DeleteUser removes an admin account. The caller may not delete
// themselves, and the last remaining admin may never be deleted.
func (s *adminService) DeleteUser(ctx context.Context, callerID, id uuid.UUID) error {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if admin == nil {
		return model.ErrAdminNotFound
	}

	if admin.ID == callerID {
		return model.ErrSelfDelete
	}

	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if count <= 1 {
		return model.ErrLastAdmin
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin account deleted")
	return nil
}

// UpdateUsername renames an admin account.
func (s *adminService) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	if username == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Username required")
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	if admin == nil {
		return model.ErrAdminNotFound
	}

	existing, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}
	if existing != nil && existing.ID != id {
		return model.ErrDuplicateUsername
	}

	return s.adminRepo.UpdateUsername(ctx, id, username)
}

// ResetPassword sets a new password for another admin account.
func (s *adminService) ResetPassword(ctx context.Context, callerID, id uuid.UUID, password string) error {
	if password == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Password required")
	}

	if id == callerID {
		return model.ErrSelfPasswordReset
	}

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if admin == nil {
		return model.ErrAdminNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin password reset")
	return nil
}

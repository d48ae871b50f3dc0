package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	jwtpkg "github.com/gebeta-delivery/gebeta/internal/pkg/jwt"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/admins"
)

// AdminUC implements the admins.AdminUC interface
type AdminUC struct {
	cfg       *models.Config
	adminRepo admins.AdminRepo
}

// NewAdminUC creates a new admin use case
func NewAdminUC(cfg *models.Config, adminRepo admins.AdminRepo) *AdminUC {
	return &AdminUC{
		cfg:       cfg,
		adminRepo: adminRepo,
	}
}

// Login verifies the credentials and issues a JWT. A missing account and a
// wrong password are indistinguishable to the caller.
func (uc *AdminUC) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := uc.adminRepo.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := jwtpkg.GenerateToken(admin.ID, admin.Role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin logged in",
		logger.String("admin_id", admin.ID.String()),
		logger.String("role", admin.Role))

	return &models.LoginResponse{
		Token:    token,
		AdminID:  admin.ID,
		Role:     admin.Role,
		FullName: admin.FullName,
	}, nil
}

// CreateAdmin creates an operator account with a bcrypt password hash
func (uc *AdminUC) CreateAdmin(ctx context.Context, creatorID uuid.UUID, req models.AdminCreate) (*models.Admin, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.ErrMissingField
	}
	switch req.Role {
	case models.RoleSuperAdmin, models.RoleRestaurantAdmin, models.RoleDriver:
	default:
		return nil, apperrors.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         req.Role,
		RestaurantID: req.RestaurantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin account created",
		logger.String("admin_id", admin.ID.String()),
		logger.String("role", admin.Role),
		logger.String("created_by", creatorID.String()))
	return admin, nil
}

// GetAdmin retrieves an admin by id
func (uc *AdminUC) GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return uc.adminRepo.GetAdmin(ctx, id)
}

// ListAdmins lists all operator accounts
func (uc *AdminUC) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return uc.adminRepo.ListAdmins(ctx)
}

// DeleteAdmin removes an operator account
func (uc *AdminUC) DeleteAdmin(ctx context.Context, adminID, creatorID uuid.UUID) error {
	if err := uc.adminRepo.DeleteAdmin(ctx, adminID); err != nil {
		return err
	}
	logger.Info("Admin account deleted",
		logger.String("admin_id", adminID.String()),
		logger.String("deleted_by", creatorID.String()))
	return nil
}

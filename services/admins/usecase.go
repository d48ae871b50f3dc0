package admins

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// AdminUC defines operator account business logic
type AdminUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	CreateAdmin(ctx context.Context, creatorID uuid.UUID, req models.AdminCreate) (*models.Admin, error)
	GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	DeleteAdmin(ctx context.Context, adminID, creatorID uuid.UUID) error
}

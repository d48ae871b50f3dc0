package admins

import (
	"context"

	"github.com/google/uuid"

	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// AdminRepo defines operator account data access
type AdminRepo interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}

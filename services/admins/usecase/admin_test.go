package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	"github.com/gebeta-delivery/gebeta/services/admins/mocks"
)

func jwtConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key",
			Expiration: 60,
			Issuer:     "gebeta-test",
		},
	}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	adminID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetAdminByEmail(gomock.Any(), "admin@gebeta.et").
		Return(&models.Admin{
			ID:           adminID,
			Email:        "admin@gebeta.et",
			FullName:     "Sara Tesfaye",
			PasswordHash: string(hash),
			Role:         models.RoleSuperAdmin,
		}, nil)

	uc := NewAdminUC(jwtConfig(), mockRepo)
	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "  Admin@Gebeta.et ",
		Password: "s3cret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, adminID, resp.AdminID)
	assert.Equal(t, models.RoleSuperAdmin, resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetAdminByEmail(gomock.Any(), "admin@gebeta.et").
		Return(&models.Admin{PasswordHash: string(hash)}, nil)

	uc := NewAdminUC(jwtConfig(), mockRepo)
	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@gebeta.et",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)

	// The caller can't tell a missing account from a wrong password
	mockRepo.EXPECT().
		GetAdminByEmail(gomock.Any(), "nobody@gebeta.et").
		Return(nil, apperrors.ErrAdminNotFound)

	uc := NewAdminUC(jwtConfig(), mockRepo)
	_, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@gebeta.et",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCreateAdmin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)

	mockRepo.EXPECT().
		CreateAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, admin *models.Admin) error {
			assert.Equal(t, "ops@gebeta.et", admin.Email)
			assert.NotEqual(t, "s3cret", admin.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
			return nil
		})

	uc := NewAdminUC(jwtConfig(), mockRepo)
	admin, err := uc.CreateAdmin(context.Background(), uuid.New(), models.AdminCreate{
		Email:    "Ops@Gebeta.et",
		FullName: "Mulu Alemu",
		Password: "s3cret",
		Role:     models.RoleRestaurantAdmin,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RoleRestaurantAdmin, admin.Role)
}

func TestCreateAdmin_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAdminUC(jwtConfig(), mocks.NewMockAdminRepo(ctrl))

	_, err := uc.CreateAdmin(context.Background(), uuid.New(), models.AdminCreate{
		Email:    "ops@gebeta.et",
		Password: "s3cret",
		Role:     "root",
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

func TestCreateAdmin_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAdminUC(jwtConfig(), mocks.NewMockAdminRepo(ctrl))

	_, err := uc.CreateAdmin(context.Background(), uuid.New(), models.AdminCreate{
		Email: "ops@gebeta.et",
		Role:  models.RoleSuperAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
}

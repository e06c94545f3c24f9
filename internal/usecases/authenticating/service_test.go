package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository/mocks"
	"github.com/uniquebrothers/sales-entry-api/internal/config"
	"github.com/uniquebrothers/sales-entry-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	svc := &Service{
		userRepo: userRepo,
		cfg: &config.Config{
			Auth: config.Auth{SecretKey: "test-secret", TokenTTLHours: 1},
		},
	}

	return svc, userRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	t.Run("valid credentials produce a verifiable token", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("admin1").
			Return(&domain.User{
				ID:           1,
				Username:     "admin1",
				Email:        "admin@uniquebrothers.com",
				PasswordHash: hashPassword(t, "unique123"),
				Role:         domain.RoleOwner,
				Active:       true,
			}, nil)

		token, err := svc.LoginUser("Admin1", "unique123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, domain.RoleOwner, claims.UserRole)
		assert.True(t, claims.IsOwner())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("admin1").
			Return(&domain.User{
				ID:           1,
				Username:     "admin1",
				PasswordHash: hashPassword(t, "unique123"),
				Active:       true,
			}, nil)

		_, err := svc.LoginUser("admin1", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("disabled user", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("staff1").
			Return(&domain.User{
				ID:           2,
				Username:     "staff1",
				PasswordHash: hashPassword(t, "unique123"),
				Active:       false,
			}, nil)

		_, err := svc.LoginUser("staff1", "unique123")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("ghost").
			Return(nil, nil)

		_, err := svc.LoginUser("ghost", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing credentials", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("hashes the password and defaults the role", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("newuser").
			Return(nil, nil)

		userRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, domain.RoleEmployee, user.Role)
				assert.True(t, user.Active)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
				user.ID = 10
				return user, nil
			})

		user, err := svc.CreateUser(&domain.User{
			Username:     "NewUser",
			Email:        "new@uniquebrothers.com",
			PasswordHash: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "newuser", user.Username)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("admin1").
			Return(&domain.User{ID: 1, Username: "admin1"}, nil)

		_, err := svc.CreateUser(&domain.User{
			Username:     "admin1",
			Email:        "dup@uniquebrothers.com",
			PasswordHash: "secret123",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByUsername("newuser").
			Return(nil, nil)

		_, err := svc.CreateUser(&domain.User{
			Username:     "newuser",
			Email:        "new@uniquebrothers.com",
			PasswordHash: "secret123",
			Role:         "superadmin",
		})
		assert.Error(t, err)
	})

	t.Run("missing required data", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateUser(&domain.User{Username: "nopassword"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "oldpassword")}, nil)

		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")))
				return nil
			})

		assert.NoError(t, svc.ChangePassword(1, "oldpassword", "newpassword"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "oldpassword")}, nil)

		err := svc.ChangePassword(1, "wrong", "newpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("new password too short", func(t *testing.T) {
		svc, userRepo := newTestService(t)

		userRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "oldpassword")}, nil)

		err := svc.ChangePassword(1, "oldpassword", "short")
		assert.Error(t, err)
	})
}

// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil)
	ctx := context.Background()

	t.Run("customer registration creates the profile row", func(t *testing.T) {
		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "supersecret",
			FullName: "Alice Example",
			Role:     "customer",
			Address:  "7 Hill Road",
			Pincode:  "560001",
		})
		require.NoError(t, err)
		assert.Equal(t, "customer", resp.Role)

		var customer model.Customer
		require.NoError(t, db.First(&customer, "user_id = ?", resp.Id).Error)
		assert.Equal(t, "7 Hill Road", customer.Address)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "alice@example.com",
			Password: "supersecret",
			FullName: "Alice Again",
			Role:     "customer",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("professional registration starts pending", func(t *testing.T) {
		catalog := seedService(t, db, "Plumbing", true)
		resp, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:           "bob@example.com",
			Password:        "supersecret",
			FullName:        "Bob Example",
			Role:            "professional",
			ServiceId:       &catalog.Id,
			YearsExperience: 5,
		})
		require.NoError(t, err)

		var pro model.Professional
		require.NoError(t, db.First(&pro, "user_id = ?", resp.Id).Error)
		assert.Equal(t, "pending", pro.Verification)
		assert.Equal(t, catalog.Id, pro.ServiceId)
	})

	t.Run("professional without a service is refused", func(t *testing.T) {
		_, err := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "carol@example.com",
			Password: "supersecret",
			FullName: "Carol Example",
			Role:     "professional",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

		// The refusal must not leave a half-created account behind.
		var count int64
		require.NoError(t, db.Model(&model.User{}).Where("email = ?", "carol@example.com").Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}

func TestLogin(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "dave@example.com",
		Password: "supersecret",
		FullName: "Dave Example",
		Role:     "customer",
	})
	require.NoError(t, err)

	t.Run("valid credentials yield a signed token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "dave@example.com", Password: "supersecret"})
		require.NoError(t, err)
		assert.Equal(t, "dave@example.com", resp.User.Email)

		token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, resp.User.Id.String(), claims["user_id"])
		assert.Equal(t, "customer", claims["role"])
		assert.NotEmpty(t, claims["jti"])
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "dave@example.com", Password: "nope"})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("unknown email is invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		require.NoError(t, db.Model(&model.User{}).Where("email = ?", "dave@example.com").Update("active", false).Error)
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "dave@example.com", Password: "supersecret"})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

func TestLogout(t *testing.T) {
	factory, _ := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil)

	t.Run("empty jti is a validation error", func(t *testing.T) {
		err := svc.Logout(context.Background(), "", time.Now().Add(time.Hour))
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("without a token store logout is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)))
	})
}

func TestRefresh(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	factory, db := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil)
	ctx := context.Background()

	user := seedUser(t, db, "customer")

	t.Run("active account gets a fresh token", func(t *testing.T) {
		resp, err := svc.Refresh(ctx, user.Id, "old-jti", time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		parsed, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, user.Id.String(), claims["user_id"])
		assert.Equal(t, "customer", claims["role"])
		assert.NotEqual(t, "old-jti", claims["jti"])
	})

	t.Run("deactivated account cannot refresh", func(t *testing.T) {
		require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.Id).Update("active", false).Error)

		_, err := svc.Refresh(ctx, user.Id, "", time.Time{})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})

	t.Run("unknown account cannot refresh", func(t *testing.T) {
		_, err := svc.Refresh(ctx, uuid.New(), "", time.Time{})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindAuthorization))
	})
}

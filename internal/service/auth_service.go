// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/dto"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/entity"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/apperrors"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/tokenstore"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/specification"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"
	"github.com/SudeepMalipeddi/Service-Sphere/pkg/events"
	pktNats "github.com/SudeepMalipeddi/Service-Sphere/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenExpiry = time.Hour * 24

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, userId uuid.UUID, oldJti string, oldExpiresAt time.Time) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokens         tokenstore.Store
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokens tokenstore.Store, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		tokens:         tokens,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation("email already registered")
	}

	role := entity.UserRole(req.Role)
	if role == entity.UserRoleProfessional {
		if req.ServiceId == nil {
			return nil, apperrors.Validation("professionals must pick the service they offer")
		}
		svc, serr := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: *req.ServiceId})
		if serr != nil {
			return nil, serr
		}
		if svc == nil {
			return nil, apperrors.Validation("unknown service")
		}
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// 3. User and profile row are created together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	switch role {
	case entity.UserRoleCustomer:
		customer := &entity.Customer{
			Id:        uuid.New(),
			UserId:    user.Id,
			Address:   req.Address,
			Pincode:   req.Pincode,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
			return nil, err
		}
	case entity.UserRoleProfessional:
		professional := &entity.Professional{
			Id:              uuid.New(),
			UserId:          user.Id,
			ServiceId:       *req.ServiceId,
			Description:     req.Description,
			YearsExperience: req.YearsExperience,
			Verification:    entity.VerificationPending,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if err := uow.ProfessionalRepository().Create(ctx, professional); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// PUBLISH EVENT
	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_REGISTERED",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"role":    string(role),
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_REGISTERED event: %v\n", err)
		}
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email, Role: string(role)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, apperrors.Authorization("invalid credentials")
	}
	if user == nil {
		return nil, apperrors.Authorization("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Authorization("invalid credentials")
	}

	if !user.Active {
		return nil, apperrors.Authorization("account is deactivated")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signedToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.Role),
			Active:   user.Active,
		},
	}, nil
}

func signAccessToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"jti":     uuid.New().String(),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

// Refresh reissues an access token for a still-valid session and retires
// the presented one.
func (s *authService) Refresh(ctx context.Context, userId uuid.UUID, oldJti string, oldExpiresAt time.Time) (*dto.RefreshResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, apperrors.Authorization("account is deactivated")
	}

	signedToken, err := signAccessToken(user)
	if err != nil {
		return nil, err
	}

	// The old token stays out of circulation once the new one exists.
	if s.tokens != nil && oldJti != "" {
		if rerr := s.tokens.Revoke(ctx, oldJti, time.Until(oldExpiresAt)); rerr != nil {
			fmt.Printf("[WARN] Failed to revoke refreshed token %s: %v\n", oldJti, rerr)
		}
	}

	return &dto.RefreshResponse{AccessToken: signedToken}, nil
}

// Logout revokes the token's jti until its natural expiry.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return apperrors.Validation("token has no id")
	}
	if s.tokens == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	return s.tokens.Revoke(ctx, jti, ttl)
}

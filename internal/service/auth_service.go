package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/mailer"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"mindwell-be/pkg/events"
	pktNats "mindwell-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func signAccessToken(user *entity.User, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleUser,
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// User + token creation must land together.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     otpCode,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendOTP(user.Email, otpCode); emailErr != nil {
			fmt.Printf("Error sending registration email: %v\n", emailErr)
		}
	}()

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventUserRegistered,
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", constant.EventUserRegistered, err)
		}
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	if user.Status == entity.UserStatusActive {
		return nil
	}

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByToken{Token: req.Token},
	)
	if err != nil || tokenEntity == nil {
		return errors.New("invalid otp code")
	}

	if time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("otp code expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ActivateUser(ctx, user.Id); err != nil {
		return err
	}

	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, errors.New("email not verified. please check your inbox for the otp code")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	signedToken, err := signAccessToken(user, time.Hour*24)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string

	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashRefreshToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
			Role:  string(user.Role),
		},
	}, nil
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{TokenHash: hashRefreshToken(req.RefreshToken)},
		specification.NotRevoked{},
	)
	if err != nil || stored == nil {
		return nil, errors.New("invalid refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		return nil, errors.New("refresh token expired")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: stored.UserId})
	if err != nil || user == nil {
		return nil, errors.New("invalid refresh token")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	signedToken, err := signAccessToken(user, time.Hour*24)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshTokenResponse{AccessToken: signedToken}, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		// Stateless access tokens cannot be revoked; nothing to do.
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.UserRepository().FindRefreshToken(ctx,
		specification.ByTokenHash{TokenHash: hashRefreshToken(refreshToken)},
		specification.NotRevoked{},
	)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	return uow.UserRepository().RevokeRefreshToken(ctx, stored.Id)
}

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/qastore/pkg/apperr"
	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/dtos"
	"github.com/qastore/pkg/entities"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// bcrypt work factor, matched to ~100ms-class verification.
	passwordHashCost = 10

	resetTokenTTL = time.Hour

	// Upper bound on concurrent bcrypt calls. Hashing is the one CPU-heavy
	// operation in this service; without a bound a burst of registrations
	// pins every request goroutine on it.
	maxConcurrentHashes = 8
)

type Service interface {
	Register(ctx context.Context, req dtos.DTOForUserCreate) (*dtos.UserResponse, error)
	Login(ctx context.Context, req dtos.DTOForUserLogin) (*dtos.UserResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (uint, error)
	ResetPassword(ctx context.Context, token string, newPassword string) error
	UpdateProfile(ctx context.Context, req dtos.UpdateProfileDTO) error
}

type service struct {
	repository Repository
	logger     *zap.Logger
	hashSem    *semaphore.Weighted
}

func NewService(r Repository, logger *zap.Logger) Service {
	return &service{
		repository: r,
		logger:     logger,
		hashSem:    semaphore.NewWeighted(maxConcurrentHashes),
	}
}

func (s *service) Register(ctx context.Context, req dtos.DTOForUserCreate) (*dtos.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repository.FindUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check existing user", zap.Error(err))
		return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}
	if existing != nil {
		return nil, apperr.Conflict(constant.EMAIL_IN_USE)
	}

	passwordHash, err := s.hashPassword(ctx, req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	user := entities.User{
		Name:     req.Name,
		Email:    email,
		Password: passwordHash,
	}
	if err := s.repository.CreateUser(ctx, &user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	return dtos.NewUserResponse(&user), nil
}

// Login resolves the user first and answers "Email not found" and
// "Incorrect password" distinctly, matching the storefront's observed
// behavior. Both cases are 401.
func (s *service) Login(ctx context.Context, req dtos.DTOForUserLogin) (*dtos.UserResponse, error) {
	user, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to find user", zap.Error(err))
		return nil, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}
	if user == nil {
		return nil, apperr.Auth(constant.EMAIL_NOT_FOUND)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Auth(constant.INCORRECT_PASSWORD)
	}

	return dtos.NewUserResponse(user), nil
}

// ForgotPassword issues a reset token for the email's user. An unknown email
// yields ("", nil), not an error, so the boundary can keep its
// enumeration-safe "always success" response.
func (s *service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.repository.FindUserByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to find user", zap.Error(err))
		return "", apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}
	if user == nil {
		return "", nil
	}

	token, err := generateResetToken()
	if err != nil {
		s.logger.Error("failed to generate reset token", zap.Error(err))
		return "", apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	err = s.repository.ReplaceResetToken(ctx, &entities.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	})
	if err != nil {
		s.logger.Error("failed to store reset token", zap.Error(err))
		return "", apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	return token, nil
}

// VerifyResetToken is a read-only check; it can be repeated while the token
// stays active. Expired and unknown tokens are indistinguishable.
func (s *service) VerifyResetToken(ctx context.Context, token string) (uint, error) {
	resetToken, err := s.repository.FindValidResetToken(ctx, token)
	if err != nil {
		s.logger.Error("failed to look up reset token", zap.Error(err))
		return 0, apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}
	if resetToken == nil {
		return 0, apperr.TokenInvalid(constant.INVALID_TOKEN)
	}
	return resetToken.UserID, nil
}

// ResetPassword consumes the token: the password hash is overwritten and
// every token row of the user is deleted, including the one just used.
func (s *service) ResetPassword(ctx context.Context, token string, newPassword string) error {
	userID, err := s.VerifyResetToken(ctx, token)
	if err != nil {
		return err
	}

	passwordHash, err := s.hashPassword(ctx, newPassword)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	if err := s.repository.UpdateUserPassword(ctx, userID, passwordHash); err != nil {
		s.logger.Error("failed to update password", zap.Error(err))
		return apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	if err := s.repository.DeleteResetTokens(ctx, userID); err != nil {
		s.logger.Error("failed to delete reset tokens", zap.Error(err))
		return apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	return nil
}

// UpdateProfile applies only the fields present in the request. An address
// sub-object upserts the user's single address row.
func (s *service) UpdateProfile(ctx context.Context, req dtos.UpdateProfileDTO) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.AgeGroup != nil {
		fields["age_group"] = *req.AgeGroup
	}
	if req.MarketingEmails != nil {
		fields["marketing_emails"] = *req.MarketingEmails
	}
	if req.ProductUpdates != nil {
		fields["product_updates"] = *req.ProductUpdates
	}

	if err := s.repository.UpdateUserFields(ctx, req.UserID, fields); err != nil {
		s.logger.Error("failed to update profile", zap.Error(err))
		return apperr.Storage(constant.SOMETHING_WENT_WRONG)
	}

	if req.Address != nil {
		err := s.repository.UpsertAddress(ctx, &entities.UserAddress{
			UserID:  req.UserID,
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		})
		if err != nil {
			s.logger.Error("failed to upsert address", zap.Error(err))
			return apperr.Storage(constant.SOMETHING_WENT_WRONG)
		}
	}

	return nil
}

func (s *service) hashPassword(ctx context.Context, plaintext string) (string, error) {
	if err := s.hashSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.hashSem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// generateResetToken returns 32 bytes from crypto/rand, hex-encoded.
func generateResetToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

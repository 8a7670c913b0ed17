package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qastore/pkg/apperr"
	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/database"
	"github.com/qastore/pkg/dtos"
	"github.com/qastore/pkg/entities"
)

func newTestService(t *testing.T) (Service, Repository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	repo := NewRepo(db)
	return NewService(repo, zap.NewNop()), repo, db
}

func registerUser(t *testing.T, s Service, email, password string) *dtos.UserResponse {
	t.Helper()
	user, err := s.Register(context.Background(), dtos.DTOForUserCreate{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestRegisterNormalizesEmailAndHidesHash(t *testing.T) {
	s, repo, _ := newTestService(t)

	user := registerUser(t, s, "Alice@Example.COM", "secret123")
	assert.Equal(t, "alice@example.com", user.Email)

	stored, err := repo.FindUserByEmail(context.Background(), "ALICE@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	s, _, _ := newTestService(t)

	registerUser(t, s, "a@x.com", "secret123")
	_, err := s.Register(context.Background(), dtos.DTOForUserCreate{
		Name:     "Other",
		Email:    "A@X.com",
		Password: "other456",
	})

	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 409, ae.Status)
	assert.Equal(t, constant.EMAIL_IN_USE, ae.Message)
}

func TestLoginDistinguishesUnknownEmailFromWrongPassword(t *testing.T) {
	s, _, _ := newTestService(t)
	registerUser(t, s, "a@x.com", "secret123")

	_, err := s.Login(context.Background(), dtos.DTOForUserLogin{Email: "nobody@x.com", Password: "secret123"})
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 401, ae.Status)
	assert.Equal(t, constant.EMAIL_NOT_FOUND, ae.Message)

	_, err = s.Login(context.Background(), dtos.DTOForUserLogin{Email: "a@x.com", Password: "wrongpass"})
	ae, ok = apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 401, ae.Status)
	assert.Equal(t, constant.INCORRECT_PASSWORD, ae.Message)
}

func TestLoginSuccessReturnsUserWithAddress(t *testing.T) {
	s, _, _ := newTestService(t)
	user := registerUser(t, s, "a@x.com", "secret123")

	street := "Rua Exemplo, 123"
	err := s.UpdateProfile(context.Background(), dtos.UpdateProfileDTO{
		UserID:  user.ID,
		Address: &dtos.AddressDTO{Street: street, City: "São Paulo", State: "SP", ZipCode: "01234-567"},
	})
	require.NoError(t, err)

	got, err := s.Login(context.Background(), dtos.DTOForUserLogin{Email: "A@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.Address)
	assert.Equal(t, street, got.Address.Street)
}

func TestForgotPasswordUnknownEmailIssuesNothing(t *testing.T) {
	s, _, db := newTestService(t)

	token, err := s.ForgotPassword(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, token)

	var count int64
	db.Model(&entities.PasswordResetToken{}).Count(&count)
	assert.Zero(t, count)
}

func TestForgotPasswordTokenShape(t *testing.T) {
	s, _, _ := newTestService(t)
	registerUser(t, s, "a@x.com", "secret123")

	token, err := s.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)
	// 32 random bytes, hex-encoded
	assert.Len(t, token, 64)

	userID, err := s.VerifyResetToken(context.Background(), token)
	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestSecondIssuanceSupersedesFirstToken(t *testing.T) {
	s, _, db := newTestService(t)
	registerUser(t, s, "a@x.com", "secret123")

	first, err := s.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)
	second, err := s.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = s.VerifyResetToken(context.Background(), first)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)

	_, err = s.VerifyResetToken(context.Background(), second)
	assert.NoError(t, err)

	var count int64
	db.Model(&entities.PasswordResetToken{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestExpiredTokenTreatedAsAbsent(t *testing.T) {
	s, repo, _ := newTestService(t)
	user := registerUser(t, s, "a@x.com", "secret123")

	err := repo.ReplaceResetToken(context.Background(), &entities.PasswordResetToken{
		UserID:    user.ID,
		Token:     "expiredtoken",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	_, err = s.VerifyResetToken(context.Background(), "expiredtoken")
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, constant.INVALID_TOKEN, ae.Message)
}

func TestVerifyIsRepeatableWhileActive(t *testing.T) {
	s, _, _ := newTestService(t)
	registerUser(t, s, "a@x.com", "secret123")

	token, err := s.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := s.VerifyResetToken(context.Background(), token)
		require.NoError(t, err)
	}
}

func TestResetPasswordConsumesToken(t *testing.T) {
	s, _, db := newTestService(t)
	registerUser(t, s, "a@x.com", "oldpass123")

	token, err := s.ForgotPassword(context.Background(), "a@x.com")
	require.NoError(t, err)

	require.NoError(t, s.ResetPassword(context.Background(), token, "newpass123"))

	// single-use: the token is gone
	_, err = s.VerifyResetToken(context.Background(), token)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)

	var count int64
	db.Model(&entities.PasswordResetToken{}).Count(&count)
	assert.Zero(t, count)

	// new password works, the old one doesn't
	_, err = s.Login(context.Background(), dtos.DTOForUserLogin{Email: "a@x.com", Password: "newpass123"})
	assert.NoError(t, err)
	_, err = s.Login(context.Background(), dtos.DTOForUserLogin{Email: "a@x.com", Password: "oldpass123"})
	ae, ok = apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 401, ae.Status)
}

func TestResetPasswordWithBadToken(t *testing.T) {
	s, _, _ := newTestService(t)
	registerUser(t, s, "a@x.com", "secret123")

	err := s.ResetPassword(context.Background(), "nosuchtoken", "newpass123")
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, constant.INVALID_TOKEN, ae.Message)
}

func TestUpdateProfileLeavesOmittedFieldsUntouched(t *testing.T) {
	s, repo, _ := newTestService(t)
	user := registerUser(t, s, "a@x.com", "secret123")

	title := "sr"
	country := "brasil"
	require.NoError(t, s.UpdateProfile(context.Background(), dtos.UpdateProfileDTO{
		UserID:  user.ID,
		Title:   &title,
		Country: &country,
	}))

	name := "New Name"
	marketing := true
	require.NoError(t, s.UpdateProfile(context.Background(), dtos.UpdateProfileDTO{
		UserID:          user.ID,
		Name:            &name,
		MarketingEmails: &marketing,
	}))

	stored, err := repo.FindUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, "sr", stored.Title)
	assert.Equal(t, "brasil", stored.Country)
	assert.True(t, stored.MarketingEmails)
	assert.False(t, stored.ProductUpdates)
}

func TestUpdateProfileUpsertsSingleAddressRow(t *testing.T) {
	s, repo, db := newTestService(t)
	user := registerUser(t, s, "a@x.com", "secret123")

	require.NoError(t, s.UpdateProfile(context.Background(), dtos.UpdateProfileDTO{
		UserID:  user.ID,
		Address: &dtos.AddressDTO{Street: "First St", City: "A", State: "AA", ZipCode: "11111"},
	}))
	require.NoError(t, s.UpdateProfile(context.Background(), dtos.UpdateProfileDTO{
		UserID:  user.ID,
		Address: &dtos.AddressDTO{Street: "Second St", City: "B", State: "BB", ZipCode: "22222"},
	}))

	var count int64
	db.Model(&entities.UserAddress{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	stored, err := repo.FindUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Address)
	assert.Equal(t, "Second St", stored.Address.Street)
	assert.Equal(t, "22222", stored.Address.ZipCode)
}

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/qastore/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint) (*entities.User, error)
	UpdateUserFields(ctx context.Context, userID uint, fields map[string]interface{}) error
	UpdateUserPassword(ctx context.Context, userID uint, passwordHash string) error
	UpsertAddress(ctx context.Context, address *entities.UserAddress) error
	ReplaceResetToken(ctx context.Context, token *entities.PasswordResetToken) error
	FindValidResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error)
	DeleteResetTokens(ctx context.Context, userID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindUserByEmail looks the user up case-insensitively and preloads the
// address. Absence is (nil, nil), not an error.
func (r *repository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Preload("Address").Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindUserByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Preload("Address").Where("id = ?", id).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) UpdateUserFields(ctx context.Context, userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Updates(fields).Error
}

func (r *repository) UpdateUserPassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", userID).Update("password", passwordHash).Error
}

// UpsertAddress overwrites the single address row for the user, inserting it
// on the first update that carries one.
func (r *repository) UpsertAddress(ctx context.Context, address *entities.UserAddress) error {
	var existing entities.UserAddress
	err := r.db.WithContext(ctx).Where("user_id = ?", address.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(address).Error
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"street":   address.Street,
		"city":     address.City,
		"state":    address.State,
		"zip_code": address.ZipCode,
	}).Error
}

// ReplaceResetToken deletes every token row for the user and inserts the new
// one in a single transaction, so at most one token stays valid even when
// two issuances race.
func (r *repository) ReplaceResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", token.UserID).Delete(&entities.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// FindValidResetToken matches on the exact token value and a strictly future
// expiry. Expired rows look the same as missing ones.
func (r *repository) FindValidResetToken(ctx context.Context, token string) (*entities.PasswordResetToken, error) {
	var resetToken entities.PasswordResetToken
	err := r.db.WithContext(ctx).Where("token = ? AND expires_at > ?", token, time.Now()).First(&resetToken).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resetToken, nil
}

func (r *repository) DeleteResetTokens(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(&entities.PasswordResetToken{}).Error
}

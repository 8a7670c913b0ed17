package dtos

import (
	"github.com/qastore/pkg/entities"
)

// DTO for user registration
type DTOForUserCreate struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// DTO for user login
type DTOForUserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordDTO struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileDTO carries a partial profile update. Nil fields are left
// untouched (COALESCE semantics in the update).
type UpdateProfileDTO struct {
	UserID          uint        `json:"userId" binding:"required"`
	Name            *string     `json:"name"`
	Email           *string     `json:"email"`
	Title           *string     `json:"title"`
	Gender          *string     `json:"gender"`
	Country         *string     `json:"country"`
	AgeGroup        *string     `json:"ageGroup"`
	MarketingEmails *bool       `json:"marketingEmails"`
	ProductUpdates  *bool       `json:"productUpdates"`
	Address         *AddressDTO `json:"address"`
}

type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// UserResponse is the user record as returned to clients. The password hash
// has no field here on purpose.
type UserResponse struct {
	ID              uint        `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Title           string      `json:"title,omitempty"`
	Gender          string      `json:"gender,omitempty"`
	Country         string      `json:"country,omitempty"`
	AgeGroup        string      `json:"ageGroup,omitempty"`
	MarketingEmails bool        `json:"marketingEmails"`
	ProductUpdates  bool        `json:"productUpdates"`
	Address         *AddressDTO `json:"address,omitempty"`
}

func NewUserResponse(u *entities.User) *UserResponse {
	resp := &UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Title:           u.Title,
		Gender:          u.Gender,
		Country:         u.Country,
		AgeGroup:        u.AgeGroup,
		MarketingEmails: u.MarketingEmails,
		ProductUpdates:  u.ProductUpdates,
	}
	if u.Address != nil {
		resp.Address = &AddressDTO{
			Street:  u.Address.Street,
			City:    u.Address.City,
			State:   u.Address.State,
			ZipCode: u.Address.ZipCode,
		}
	}
	return resp
}

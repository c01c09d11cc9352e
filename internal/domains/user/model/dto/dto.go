package dto

import (
	"github.com/google/uuid"

	"tourism/internal/domains/user/model"
	"tourism/shared/constant"
	gDto "tourism/shared/dto"
	gModel "tourism/shared/model"
)

type CreateUserRequest struct {
	Email       string  `json:"email"                  form:"email"        validate:"required,email,max=254"`
	Password    string  `json:"password"               form:"password"     validate:"required,min=5,max=128"`
	FirstName   string  `json:"first_name"             form:"first_name"   validate:"max=150"`
	LastName    string  `json:"last_name"              form:"last_name"    validate:"max=150"`
	Address     string  `json:"address"                form:"address"      validate:"max=50"`
	PhoneNumber *string `json:"phone_number,omitempty" form:"phone_number" validate:"omitempty,phone"`
	CardInfo    string  `json:"card_info"              form:"card_info"    validate:"max=50"`
	// Image is a base64 data uri; multipart requests send the file part instead.
	Image string `json:"image,omitempty" form:"-"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		ID:             uuid.NewString(),
		Email:          model.NormalizeEmail(r.Email),
		Password:       hashedPassword,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Address:        r.Address,
		PhoneNumber:    r.PhoneNumber,
		CardInfo:       r.CardInfo,
		FirstTimeLogin: true,
		Level:          constant.RoleUser,
		Active:         true,
		Metadata:       gModel.NewMetadata(constant.ContextGuest),
	}
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"        db:"email"        validate:"omitempty,email,max=254"`
	Password    *string `json:"password,omitempty"     db:"password"     validate:"omitempty,min=5,max=128"`
	FirstName   *string `json:"first_name,omitempty"   db:"first_name"   validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty"    db:"last_name"    validate:"omitempty,max=150"`
	Address     *string `json:"address,omitempty"      db:"address"      validate:"omitempty,max=50"`
	PhoneNumber *string `json:"phone_number,omitempty" db:"phone_number" validate:"omitempty,phone"`
	CardInfo    *string `json:"card_info,omitempty"    db:"card_info"    validate:"omitempty,max=50"`
}

type UpdateImageRequest struct {
	Image *string `db:"image"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Address        string `json:"address"`
	CardInfo       string `json:"card_info"`
	Image          string `json:"image,omitempty"`
	FirstTimeLogin bool   `json:"first_time_login"`
	gDto.Metadata
}

// FromModel copies the public profile. The phone number is write-only and never echoed.
func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Address = model.Address
	r.CardInfo = model.CardInfo
	r.FirstTimeLogin = model.FirstTimeLogin

	if model.Image != nil {
		r.Image = *model.Image
	}

	r.Metadata.FromModel(model.Metadata)
}

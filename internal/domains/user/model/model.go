package model

import (
	"strings"

	"tourism/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID             = "id"
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldAddress        = "address"
	FieldPhoneNumber    = "phone_number"
	FieldCardInfo       = "card_info"
	FieldImage          = "image"
	FieldFirstTimeLogin = "first_time_login"
	FieldLevel          = "level"
	FieldActive         = "active"

	ConstraintEmail       = "users_email_key"
	ConstraintPhoneNumber = "users_phone_number_key"
)

type User struct {
	ID             string  `db:"id"`
	Email          string  `db:"email"`
	Password       string  `db:"password"`
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Address        string  `db:"address"`
	PhoneNumber    *string `db:"phone_number"`
	CardInfo       string  `db:"card_info"`
	Image          *string `db:"image"`
	FirstTimeLogin bool    `db:"first_time_login"`
	Level          string  `db:"level"`
	Active         bool    `db:"active"`
	model.Metadata
}

// NormalizeEmail trims the address and lower-cases its domain part. The local part is kept as typed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

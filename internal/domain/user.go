package domain

import "time"

type User struct {
	ID           int32      `json:"id"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	RegisteredOn time.Time  `json:"registered_on"`
	LastLoginOn  *time.Time `json:"last_login_on,omitempty"`
}

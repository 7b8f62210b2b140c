package models

import "time"

// Roles carried by authenticated principals.
const (
	RoleCustomer = "CUSTOMER"
	RoleWorkshop = "WORKSHOP"
	RoleAdmin    = "ADMIN"
)

// User is a customer or administrator account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user can hold
const (
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
)

// User represents a staff account (admin or pharmacist)
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName   string         `gorm:"size:255" json:"first_name"`
	LastName    string         `gorm:"size:255" json:"last_name"`
	Email       string         `gorm:"size:255;unique;not null" json:"email"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	Role        string         `gorm:"size:50;not null;default:'pharmacist'" json:"role"`
	PhoneNumber string         `gorm:"size:50" json:"phone_number"`
	Salary      int64          `gorm:"default:0" json:"salary"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

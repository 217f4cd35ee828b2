package model

// User is an account. HashedPassword never leaves the service layer.
type User struct {
	Base
	Email          string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Username       string  `gorm:"size:50;not null;uniqueIndex" json:"username"`
	FullName       *string `gorm:"size:100" json:"full_name"`
	HashedPassword string  `gorm:"size:255;not null" json:"-"`
	IsActive       bool    `gorm:"not null" json:"is_active"`
	IsSuperuser    bool    `gorm:"not null;default:false" json:"is_superuser"`
}

func (User) TableName() string { return "users" }

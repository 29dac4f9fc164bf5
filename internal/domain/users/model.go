package users

import "time"

type User struct {
	ID         uint    `gorm:"primaryKey"`
	Email      string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password   *string `gorm:""`
	Role       string  `gorm:"type:varchar(20);not null;default:'admin'"`
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

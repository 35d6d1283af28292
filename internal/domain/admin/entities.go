package admin

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSubAdmin Role = "SUB_ADMIN"
)

type Admin struct {
	ID           string    `gorm:"primaryKey;size:24;column:id" json:"_id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:ux_admins_email" json:"email"`
	PasswordHash string    `gorm:"size:100;column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string { return "admins" }

package models

import (
	"time"

	"gorm.io/gorm"
)

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;unique;not null" json:"name"` // 'admin', 'retailer'
	CreatedAt time.Time `json:"created_at"`
	Users     []User    `json:"-"`
}

// User is a retailer account. Its ID is the retailer identity that scopes
// every candidate read and every finalized-invoice write.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	LoginID      string         `gorm:"size:50;unique;not null" json:"login_id"`
	BusinessName string         `gorm:"size:100;not null" json:"business_name"`
	Mobile       string         `gorm:"size:15" json:"mobile"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	RoleID       uint           `json:"role_id"`
	Role         Role           `gorm:"foreignKey:RoleID" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

type LoginHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	LoginTime time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"login_time"`
	IPAddress string    `gorm:"size:45" json:"ip_address"`
}

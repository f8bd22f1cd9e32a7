package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
// Email is nullable so that customers created without one do not collide on the unique index.
type CustomerModel struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex"`
	Phone     string  `gorm:"type:varchar(50)"`
	Address   string  `gorm:"type:text"`
	CreatedAt time.Time
}

func (CustomerModel) TableName() string {
	return "customers"
}

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(20);not null;default:customer"`
}

func (UserModel) TableName() string {
	return "users"
}

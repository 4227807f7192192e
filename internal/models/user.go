package models

// User is a row of the users table. The table is shared with the web
// application, which reads Email and PasswordHash at login, and has no
// columns beyond these three.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null;size:320"`
	PasswordHash string `gorm:"column:password;not null"`
}

// TableName pins the table name for gorm.
func (User) TableName() string { return "users" }

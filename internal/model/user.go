package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex:idx_users_email"`
	Password  string    `gorm:"type:varchar(128)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	// 关联关系，删除用户时级联删除
	Posts    []Post    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}

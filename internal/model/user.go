package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type User struct {
	Id         int       `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"type:char(96);uniqueIndex"`
	Password   string    `json:"password" gorm:"type:char(96)"`
	IsAdmin    bool      `json:"is_admin" gorm:"default:false"`
	CreateTime time.Time `json:"create_time" gorm:"datetime;autoCreateTime"`
}

func CreateUser(user *User) error {
	return DB.Create(user).Error
}

func GetUserById(id int) (*User, error) {
	var user User
	if err := DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByUsername(username string) (*User, error) {
	var user User
	err := DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteUser(id int) error {
	return DB.Delete(&User{}, id).Error
}

func ListUsers(start, limit int) ([]User, int64, error) {
	var users []User
	var total int64
	if err := DB.Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := DB.Offset(start).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// EnsureAdmin creates the initial admin account when the users table is
// empty, so a fresh deployment can log in.
func EnsureAdmin(username, password string) error {
	_, err := GetUserByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return CreateUser(&User{Username: username, Password: password, IsAdmin: true})
}

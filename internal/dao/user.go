package dao

import (
	"time"

	"bilifeed/internal/model"
)

type UserSpec struct {
	Id         int    `json:"id"`
	Username   string `json:"username"`
	IsAdmin    bool   `json:"isAdmin"`
	CreateTime string `json:"createTime"`
}

func FromUserModel(user *model.User) *UserSpec {
	return &UserSpec{
		Id:         user.Id,
		Username:   user.Username,
		IsAdmin:    user.IsAdmin,
		CreateTime: user.CreateTime.Format(time.RFC3339),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserSpec `json:"user"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	IsAdmin  bool   `json:"isAdmin"`
}

type CreateUserResponse struct {
	Id int `json:"id"`
}

type ListUsersRequest struct {
	Start int `json:"start" form:"start" binding:"min=0"`
	Limit int `json:"limit" form:"limit" binding:"min=0,max=50"`
}

type ListUsersResponse struct {
	Items []UserSpec `json:"items"`
	Total int64      `json:"total"`
}

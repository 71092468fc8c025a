package dto

import "pets_backend/internal/feature/users/domain/entity"

// UserResponse はユーザーの外部公開用プロジェクションです。
// パスワード（ハッシュ含む）は決して含まれません。
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	IsAdmin     bool   `json:"isAdmin"`
}

// NewUserResponse はエンティティからUserResponseを生成します。
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		IsAdmin:     u.IsAdmin,
	}
}

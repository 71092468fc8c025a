// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// UpdateUserReq はPATCH /usersのリクエストボディを表します。
// すべてのフィールドは任意で、nilのフィールドは既存値を保持します。
// passwordを指定する場合はpasswordConfirmとの一致が必要です。
type UpdateUserReq struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	PhoneNumber     *string `json:"phoneNumber" binding:"omitempty,max=15"`
	Password        *string `json:"password" binding:"omitempty,min=8"`
	PasswordConfirm *string `json:"passwordConfirm" binding:"omitempty"`
}

// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq はPOST /auth/registerのリクエストボディを表します。
// Ginのbindingタグで入力チェック（必須・長さ・メール形式・パスワード長）を行います。
type RegisterReq struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=15"`
}

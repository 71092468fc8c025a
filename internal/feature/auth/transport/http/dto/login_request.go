package dto

// LoginReq はPOST /auth/loginのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse はログイン成功時のレスポンスボディを表します。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

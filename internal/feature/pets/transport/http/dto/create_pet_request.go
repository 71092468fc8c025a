// Package dto はpetsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreatePetReq はPOST /petsのリクエストボディを表します。
// オーナーはBearerトークンのsubjectから決定されるため、ボディでは指定しません。
// AgeとIsSterilizedはゼロ値（0歳・未避妊）が正当な入力のためポインタで受けます。
type CreatePetReq struct {
	Name         string `json:"name" binding:"required,min=1,max=300"`
	Type         string `json:"type" binding:"required,min=1,max=100"`
	Breed        string `json:"breed" binding:"required,min=1,max=300"`
	Age          *int   `json:"age" binding:"required,min=0,max=100"`
	IsSterilized *bool  `json:"isSterilized" binding:"required"`
}

// Package dto はpetvisionフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AdviceReq はPOST /petvision/adviceのリクエストボディを表します。
type AdviceReq struct {
	Breed string `json:"breed" binding:"required,min=1,max=100"`
}

// AdviceResponse は飼育アドバイスのレスポンスボディを表します。
type AdviceResponse struct {
	Breed   string `json:"breed"`
	Summary string `json:"summary"`
}

// DetectedLabelResponse は検出された1ラベルのレスポンス表現です。
type DetectedLabelResponse struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

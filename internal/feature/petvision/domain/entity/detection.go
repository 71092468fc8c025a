// Package entity はpetvisionフィーチャーのドメインモデルを定義します。
package entity

// DetectedLabel はペット写真から検出されたラベル（品種・種別の候補）を表します。
type DetectedLabel struct {
	Name       string  // 検出されたラベル名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}

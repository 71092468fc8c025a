package entity

// CareAdvice は品種に対する飼育アドバイスを表します。
type CareAdvice struct {
	Breed   string // 対象の品種
	Summary string // AI生成の飼育アドバイス
}

// Package entity はpetsフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	userentity "pets_backend/internal/feature/users/domain/entity"
)

// Pet は登録されたペットを表します。
// すべてのペットは常にちょうど1人のオーナー（User）に属します。
type Pet struct {
	// ID はペットの一意な識別子です。
	ID uint `gorm:"primaryKey" json:"id"`

	// Name はペットの名前です（1〜300文字）。
	Name string `gorm:"size:300;not null" json:"name"`

	// Type はペットの種別です（例: dog, cat。1〜100文字）。
	Type string `gorm:"size:100;not null" json:"type"`

	// Breed はペットの品種です（1〜300文字）。
	Breed string `gorm:"size:300;not null" json:"breed"`

	// Age はペットの年齢です（0〜100歳）。
	Age int `gorm:"not null" json:"age"`

	// IsSterilized は避妊・去勢済みフラグです。
	IsSterilized bool `gorm:"not null" json:"isSterilized"`

	// OwnerID はオーナーのユーザーIDです。必須です。
	OwnerID uint `gorm:"not null;index" json:"ownerId"`

	// Owner はオーナーのユーザーエンティティです（OwnerIDで関連付け）。
	Owner userentity.User `gorm:"foreignKey:OwnerID" json:"-"`

	// CreatedAt はペットの登録日時です。
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt はペットの最終更新日時です。
	UpdatedAt time.Time `json:"updatedAt"`
}

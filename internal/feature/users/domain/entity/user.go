// Package entity はusersフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User はシステムに登録された利用者を表します。
// 認証情報とプロフィール情報を保持します。
type User struct {
	// ID はユーザーの一意な識別子です。
	ID uint `gorm:"primaryKey" json:"id"`

	// Name はユーザーの表示名です（1〜100文字）。
	Name string `gorm:"size:100;not null" json:"name"`

	// Email は認証に使用するメールアドレスです。
	// 全ユーザー間で一意でなければなりません。
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password はハッシュ化済みパスワードです。
	// 平文を保存してはならず、レスポンスに含めてもいけません。
	Password string `gorm:"size:255;not null" json:"-"`

	// PhoneNumber はユーザーの電話番号です。
	PhoneNumber string `gorm:"size:15" json:"phoneNumber"`

	// IsAdmin は管理者フラグです。
	IsAdmin bool `gorm:"default:false" json:"isAdmin"`

	// CreatedAt はユーザーの作成日時です。
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt はユーザーの最終更新日時です。
	UpdatedAt time.Time `json:"updatedAt"`
}

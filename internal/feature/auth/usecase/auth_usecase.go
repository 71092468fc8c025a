// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	userentity "pets_backend/internal/feature/users/domain/entity"
	usersusecase "pets_backend/internal/feature/users/usecase"
)

// UserService は認証が依存するユーザードメイン操作を定義します。
// Goの慣例に従い、インターフェースはプロバイダー（users/usecase）ではなくコンシューマー（ここ）が定義します。
type UserService interface {
	// Register は新規ユーザーを登録します。メール重複時はusersusecase.ErrEmailAlreadyExistsを返します。
	Register(ctx context.Context, in usersusecase.RegisterInput) (*userentity.User, error)
	// VerifyCredential はメールアドレスとパスワードを検証します。
	// 失敗理由（ユーザー不在・パスワード不一致）は結果から区別できません。
	VerifyCredential(ctx context.Context, email, password string) (*userentity.User, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// AuthUsecase はユーザードメインサービスとトークン発行を合成して認証フローを実装します。
type AuthUsecase struct {
	users        UserService
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserService, jwtGenerator JWTGenerator) *AuthUsecase {
	return &AuthUsecase{users: users, jwtGenerator: jwtGenerator}
}

// Register はユーザードメインサービスへの登録パススルーです。
// usersusecase.ErrEmailAlreadyExistsをそのまま伝播します。
func (u *AuthUsecase) Register(ctx context.Context, in usersusecase.RegisterInput) (*userentity.User, error) {
	return u.users.Register(ctx, in)
}

// Login はユーザーを認証し、成功時にJWTアクセストークンを返します。
// 検証失敗時はusersusecase.ErrInvalidCredentialsを伝播します（失敗理由は区別されません）。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.VerifyCredential(ctx, email, password)
	if err != nil {
		return "", err
	}

	// トークンペイロード: sub=ユーザーID, username=メールアドレス
	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

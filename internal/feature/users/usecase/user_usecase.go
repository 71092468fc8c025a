// Package usecase はusersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	petentity "pets_backend/internal/feature/pets/domain/entity"
	"pets_backend/internal/feature/users/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Save は既存ユーザーの変更を永続化します。
	Save(ctx context.Context, user *entity.User) error
}

// OwnedPetsFinder はオーナーIDによるペット検索を抽象化します。
// petsフィーチャーのアダプターが実装します（エンティティ間の循環参照を避けるため）。
type OwnedPetsFinder interface {
	// FindByOwnerID は指定されたユーザーが所有するペットをID昇順で返します。
	FindByOwnerID(ctx context.Context, ownerID uint) ([]petentity.Pet, error)
}

// RegisterInput はユーザー登録の入力です。
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
}

// ProfilePatch はプロフィール部分更新の入力です。
// nilのフィールドは「変更なし」を意味し、既存値を保持します。
type ProfilePatch struct {
	Name            *string
	PhoneNumber     *string
	Password        *string
	PasswordConfirm *string
}

// UserUsecase はユーザーのライフサイクルに関するビジネスロジックを提供します。
type UserUsecase struct {
	users UserRepository
	pets  OwnedPetsFinder
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, pets OwnedPetsFinder) *UserUsecase {
	return &UserUsecase{users: users, pets: pets}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// FindByID はIDでユーザーを取得します。副作用はありません。
func (u *UserUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// FindByEmail はメールアドレスでユーザーを取得します。副作用はありません。
func (u *UserUsecase) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.users.FindByEmail(ctx, email)
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
// 重複チェックは事前検索とDBのユニーク制約の二段構えです（後者が競合時の最終防壁）。
func (u *UserUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	// メールアドレスの重複を事前チェック
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    string(hashed),
		PhoneNumber: in.PhoneNumber,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile はプロフィールを部分更新します。
// パッチに新パスワードが含まれる場合、確認用パスワードと一致しなければErrPasswordMismatchを返します。
// nilのフィールドは変更されません。
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Password != nil {
		// 確認用パスワードの不一致（未指定を含む）は永続化前に弾く
		if patch.PasswordConfirm == nil || *patch.Password != *patch.PasswordConfirm {
			return nil, ErrPasswordMismatch
		}
		if err := validatePassword(*patch.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.PhoneNumber != nil {
		user.PhoneNumber = *patch.PhoneNumber
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListPets は指定されたユーザーが所有するペットを返します。
// ユーザーが存在しない場合はErrUserNotFound、ペットを所有していない場合は空スライスを返します。
func (u *UserUsecase) ListPets(ctx context.Context, userID uint) ([]petentity.Pet, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	pets, err := u.pets.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []petentity.Pet{}
	}
	return pets, nil
}

// VerifyCredential はメールアドレスとパスワードを検証し、成功時にユーザーを返します。
// 「ユーザー不在」と「パスワード不一致」は結果から区別できず、どちらもErrInvalidCredentialsです。
// タイミング攻撃を緩和するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *UserUsecase) VerifyCredential(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.Password
	}

	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

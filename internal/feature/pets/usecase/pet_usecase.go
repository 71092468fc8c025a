// Package usecase はpetsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"pets_backend/internal/feature/pets/domain/entity"
	userentity "pets_backend/internal/feature/users/domain/entity"
	usersusecase "pets_backend/internal/feature/users/usecase"
	"pets_backend/internal/shared/privacy"
)

const (
	// DefaultPageSize は一覧取得のデフォルトページサイズです。
	DefaultPageSize = 10
)

// ListFilter はペット一覧取得のフィルタ条件です。
// NameとTypeは任意で、両方指定された場合はAND条件になります。
type ListFilter struct {
	// Page は1始まりのページ番号です。
	Page int
	// PageSize は1ページあたりの件数です。
	PageSize int
	// Name は名前の部分一致フィルタです（大文字小文字を区別しない）。
	Name string
	// Type は種別の完全一致フィルタです。
	Type string
}

// PetRepository はペットエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PetRepository interface {
	// Create は新しいペットをストレージに永続化します。
	Create(ctx context.Context, pet *entity.Pet) error

	// FindByID は指定されたIDに一致するペットをオーナー付きで取得します。
	// ペットが存在しない場合、ErrPetNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Pet, error)

	// List はフィルタ条件に一致するページ分のペットと、ページングを無視した総件数を返します。
	List(ctx context.Context, filter ListFilter) ([]entity.Pet, int64, error)

	// Save は既存ペットの変更を永続化します。
	Save(ctx context.Context, pet *entity.Pet) error
}

// OwnerFinder はペットのオーナーとなるユーザーの検索を抽象化します。
type OwnerFinder interface {
	// FindByID は指定されたIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id uint) (*userentity.User, error)
}

// CreatePetInput はペット登録の入力です。オーナーは認証済み呼び出し元から決定されます。
type CreatePetInput struct {
	Name         string
	Type         string
	Breed        string
	Age          int
	IsSterilized bool
}

// PetPatch はペット部分更新の入力です。nilのフィールドは既存値を保持します。
type PetPatch struct {
	Name         *string
	Type         *string
	Breed        *string
	Age          *int
	IsSterilized *bool
}

// ListedPet は一覧取得結果の1件です。
// オーナーはプライバシー保護のため省略形の表示名のみ公開されます（オーナー不在時はnil）。
type ListedPet struct {
	Pet entity.Pet
	// OwnerName はprivacy.FormatUserNameで省略されたオーナー表示名です。
	OwnerName *string
}

// PetUsecase はペットのライフサイクルに関するビジネスロジックを提供します。
type PetUsecase struct {
	pets   PetRepository
	owners OwnerFinder
}

// NewPetUsecase はPetUsecaseの新しいインスタンスを生成します。
func NewPetUsecase(pets PetRepository, owners OwnerFinder) *PetUsecase {
	return &PetUsecase{pets: pets, owners: owners}
}

// Create は認証済み呼び出し元をオーナーとして新しいペットを登録します。
// オーナーが存在しない場合、ErrOwnerNotFoundを返します。
func (u *PetUsecase) Create(ctx context.Context, ownerID uint, in CreatePetInput) (*entity.Pet, error) {
	owner, err := u.owners.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, usersusecase.ErrUserNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	pet := &entity.Pet{
		Name:         in.Name,
		Type:         in.Type,
		Breed:        in.Breed,
		Age:          in.Age,
		IsSterilized: in.IsSterilized,
		OwnerID:      owner.ID,
		Owner:        *owner,
	}
	if err := u.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// List はフィルタ条件に一致するページ分のペットと総件数を返します。
// 各ペットのオーナー名はプライバシー保護のため省略形に変換されます。
// 総件数はページングを無視し、フィルタのみを反映します。
func (u *PetUsecase) List(ctx context.Context, filter ListFilter) ([]ListedPet, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = DefaultPageSize
	}

	pets, total, err := u.pets.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	listed := make([]ListedPet, 0, len(pets))
	for _, pet := range pets {
		var ownerName *string
		// Preloadでオーナーが解決できなかった場合はnilのまま公開する
		if pet.Owner.ID != 0 {
			ownerName = privacy.FormatUserName(pet.Owner.Name)
		}
		listed = append(listed, ListedPet{Pet: pet, OwnerName: ownerName})
	}
	return listed, total, nil
}

// Update はオーナー本人によるペットの部分更新を行います。
// ペットが存在しない場合はErrPetNotFound、呼び出し元がオーナーでない場合はErrNotOwnerを返します。
// nilのフィールドは変更されません。
func (u *PetUsecase) Update(ctx context.Context, callerID, petID uint, patch PetPatch) (*entity.Pet, error) {
	pet, err := u.pets.FindByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	// 所有権チェックはスキーマではなくサービス境界で強制する
	if pet.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	if patch.Name != nil {
		pet.Name = *patch.Name
	}
	if patch.Type != nil {
		pet.Type = *patch.Type
	}
	if patch.Breed != nil {
		pet.Breed = *patch.Breed
	}
	if patch.Age != nil {
		pet.Age = *patch.Age
	}
	if patch.IsSterilized != nil {
		pet.IsSterilized = *patch.IsSterilized
	}

	if err := u.pets.Save(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Package adapters はpetsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pets_backend/internal/feature/pets/domain/entity"
	"pets_backend/internal/feature/pets/usecase"
	usersusecase "pets_backend/internal/feature/users/usecase"
)

// petPostgres はPetRepositoryインターフェースのPostgreSQL実装です。
// GORMを使用してデータベース操作を行います。
type petPostgres struct {
	db *gorm.DB
}

// petPostgresが各コンシューマーのインターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.PetRepository        = (*petPostgres)(nil)
	_ usersusecase.OwnedPetsFinder = (*petPostgres)(nil)
)

// NewPetPostgres は指定されたgorm.DB接続でpetPostgresの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewPetPostgres(db *gorm.DB) *petPostgres {
	return &petPostgres{db: db}
}

// Create はペットをデータベースに追加します。
// オーナー行は更新しません（ペット行のみ書き込み）。
func (r *petPostgres) Create(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pet).Error
}

// FindByID はIDでペットをオーナー付きで取得します。
// ペットが存在しない場合、usecase.ErrPetNotFoundを返します。
func (r *petPostgres) FindByID(ctx context.Context, id uint) (*entity.Pet, error) {
	var pet entity.Pet
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

// List はフィルタ条件に一致するページ分のペットと、ページングを無視した総件数を返します。
// 名前フィルタは大文字小文字を区別しない部分一致、種別フィルタは完全一致です。
func (r *petPostgres) List(ctx context.Context, f usecase.ListFilter) ([]entity.Pet, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Pet{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	// Countの後にFindを流すため、条件確定済みのセッションとして再利用可能にする
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pets []entity.Pet
	err := q.Preload("Owner").
		Order("id").
		Limit(f.PageSize).
		Offset(f.PageSize * (f.Page - 1)).
		Find(&pets).Error
	if err != nil {
		return nil, 0, err
	}
	return pets, total, nil
}

// FindByOwnerID は指定されたユーザーが所有するペットをID昇順で返します。
// usersフィーチャーのOwnedPetsFinderとしても利用されます。
func (r *petPostgres) FindByOwnerID(ctx context.Context, ownerID uint) ([]entity.Pet, error) {
	var pets []entity.Pet
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// Save は既存ペットの変更を永続化します。オーナー行は更新しません。
func (r *petPostgres) Save(ctx context.Context, pet *entity.Pet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(pet).Error
}

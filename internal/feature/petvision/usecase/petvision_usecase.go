// Package usecase はpetvisionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"pets_backend/internal/feature/petvision/domain/entity"
	"pets_backend/internal/shared/ratelimiter"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// AdvicePromptTemplate は飼育アドバイスのプロンプトテンプレートです。
	AdvicePromptTemplate = "As a veterinary assistant, give three short care tips for a %s. Keep it practical."
	// MaxBreedLength は品種名の最大文字数（rune数）です。
	MaxBreedLength = 100
)

// validBreed は品種名に許可される文字パターンです（英数字・スペース・ハイフン等）。
var validBreed = regexp.MustCompile(`^[\p{L}\p{N}\s\-\.&,]+$`)

// LabelDetector は画像からラベルを検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LabelDetector interface {
	// DetectLabels は画像バイト列からラベルを検出し、検出結果を返します。
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
}

// CareAdvisor は飼育アドバイスを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CareAdvisor interface {
	// Advise はプロンプトからアドバイスサマリーを生成します。
	Advise(ctx context.Context, prompt string) (string, error)
}

// petvisionUsecase はペット写真解析・飼育アドバイスのビジネスロジックを提供します。
// 外部API呼び出しは注入されたレートリミッターで頻度制限されます（固定の外部ポリシー）。
type petvisionUsecase struct {
	labelDetector LabelDetector
	careAdvisor   CareAdvisor
	limiter       ratelimiter.RateLimiterInterface
}

// NewPetVisionUsecase はpetvisionUsecaseの新しいインスタンスを生成します。
func NewPetVisionUsecase(ld LabelDetector, ca CareAdvisor, rl ratelimiter.RateLimiterInterface) *petvisionUsecase {
	return &petvisionUsecase{labelDetector: ld, careAdvisor: ca, limiter: rl}
}

// DetectLabels はペット写真から品種・種別のラベル候補を検出します。
func (u *petvisionUsecase) DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	u.limiter.WaitIfNeeded()
	return u.labelDetector.DetectLabels(ctx, imageData)
}

// AdviseCare は品種名から飼育アドバイスを生成します。
func (u *petvisionUsecase) AdviseCare(ctx context.Context, breed string) (*entity.CareAdvice, error) {
	if breed == "" {
		return nil, fmt.Errorf("breed is required")
	}
	if utf8.RuneCountInString(breed) > MaxBreedLength {
		return nil, fmt.Errorf("breed exceeds maximum length of %d characters", MaxBreedLength)
	}
	if !validBreed.MatchString(breed) {
		return nil, fmt.Errorf("breed contains invalid characters")
	}
	u.limiter.WaitIfNeeded()
	prompt := fmt.Sprintf(AdvicePromptTemplate, breed)
	summary, err := u.careAdvisor.Advise(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("care advisor failed for %q: %w", breed, err)
	}
	return &entity.CareAdvice{
		Breed:   breed,
		Summary: summary,
	}, nil
}

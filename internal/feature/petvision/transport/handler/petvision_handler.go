// Package handler はpetvisionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pets_backend/internal/feature/petvision/domain/entity"
	"pets_backend/internal/feature/petvision/transport/http/dto"
)

// PetVisionUsecase はペット写真解析・飼育アドバイスのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PetVisionUsecase interface {
	DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
	AdviseCare(ctx context.Context, breed string) (*entity.CareAdvice, error)
}

// PetVisionHandler はペット写真解析・飼育アドバイスのHTTPリクエストを処理します。
type PetVisionHandler struct {
	uc PetVisionUsecase
}

// NewPetVisionHandler はPetVisionHandlerの新しいインスタンスを生成します。
func NewPetVisionHandler(uc PetVisionUsecase) *PetVisionHandler {
	return &PetVisionHandler{uc: uc}
}

// DetectLabels はペット写真をアップロードして品種・種別のラベル候補を検出します。
//
// エンドポイント: POST /petvision/detect（要認証）
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *PetVisionHandler) DetectLabels(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像の読み込みに失敗しました"})
		return
	}

	labels, err := h.uc.DetectLabels(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("ラベル検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "ラベル検出に失敗しました"})
		return
	}

	out := make([]dto.DetectedLabelResponse, 0, len(labels))
	for _, l := range labels {
		out = append(out, dto.DetectedLabelResponse{
			Name:       l.Name,
			Confidence: l.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// AdviseCare は品種に対する飼育アドバイスを生成します。
//
// エンドポイント: POST /petvision/advice（要認証）
// Content-Type: application/json
func (h *PetVisionHandler) AdviseCare(c *gin.Context) {
	var req dto.AdviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("飼育アドバイスリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "品種が必要です"})
		return
	}

	advice, err := h.uc.AdviseCare(c.Request.Context(), req.Breed)
	if err != nil {
		slog.Error("飼育アドバイスの生成に失敗", "error", err, "breed", req.Breed)
		c.JSON(http.StatusBadGateway, gin.H{"error": "飼育アドバイスの生成に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{
		Breed:   advice.Breed,
		Summary: advice.Summary,
	})
}

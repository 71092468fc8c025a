// Package handler はpetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pets_backend/internal/feature/pets/domain/entity"
	"pets_backend/internal/feature/pets/transport/http/dto"
	"pets_backend/internal/feature/pets/usecase"
	jwtmw "pets_backend/internal/platform/jwt"
)

// PetUsecase はペット操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PetUsecase interface {
	// Create は認証済み呼び出し元をオーナーとして新しいペットを登録します。
	Create(ctx context.Context, ownerID uint, in usecase.CreatePetInput) (*entity.Pet, error)
	// List はフィルタ条件に一致するページ分のペットと総件数を返します。
	List(ctx context.Context, filter usecase.ListFilter) ([]usecase.ListedPet, int64, error)
	// Update はオーナー本人によるペットの部分更新を行います。
	Update(ctx context.Context, callerID, petID uint, patch usecase.PetPatch) (*entity.Pet, error)
}

// PetHandler はペット操作のHTTPリクエストを処理します。
type PetHandler struct {
	pets PetUsecase
}

// NewPetHandler はPetHandlerの新しいインスタンスを生成します。
func NewPetHandler(pets PetUsecase) *PetHandler {
	return &PetHandler{pets: pets}
}

// Create はペット登録APIエンドポイントを処理します。
//
// エンドポイント: POST /pets（要認証）
// オーナーはBearerトークンのsubjectから決定されます。
func (h *PetHandler) Create(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)
	if callerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.CreatePetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("pet create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	in := usecase.CreatePetInput{
		Name:         req.Name,
		Type:         req.Type,
		Breed:        req.Breed,
		Age:          *req.Age,
		IsSterilized: *req.IsSterilized,
	}
	pet, err := h.pets.Create(c.Request.Context(), callerID, in)
	if err != nil {
		if errors.Is(err, usecase.ErrOwnerNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner not found"})
			return
		}
		slog.Error("pet create failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pet creation failed"})
		return
	}

	slog.Info("pet created", "pet_id", pet.ID, "user_id", callerID)
	c.JSON(http.StatusCreated, pet)
}

// List はペット一覧APIエンドポイントを処理します。
//
// エンドポイント: GET /pets（要認証）
// クエリ: page, pageSize, name（部分一致）, type（完全一致）
// オーナー名はプライバシー保護のため省略形で返されます。
func (h *PetHandler) List(c *gin.Context) {
	var query dto.ListPetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		slog.Warn("pet list validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	filter := usecase.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Name:     query.Name,
		Type:     query.Type,
	}
	listed, total, err := h.pets.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("pet list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing pets failed"})
		return
	}

	c.JSON(http.StatusOK, dto.NewListPetsResponse(listed, total))
}

// Update はペット更新APIエンドポイントを処理します。
//
// エンドポイント: PATCH /pets/:id（要認証）
// - ペット不在は404を返却
// - 呼び出し元がオーナーでない場合は400を返却（公開APIの互換仕様）
func (h *PetHandler) Update(c *gin.Context) {
	callerID := c.GetUint(jwtmw.ContextUserID)
	if callerID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	petID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
		return
	}

	var req dto.UpdatePetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("pet update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := usecase.PetPatch{
		Name:         req.Name,
		Type:         req.Type,
		Breed:        req.Breed,
		Age:          req.Age,
		IsSterilized: req.IsSterilized,
	}
	pet, err := h.pets.Update(c.Request.Context(), callerID, uint(petID), patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
		case errors.Is(err, usecase.ErrNotOwner):
			c.JSON(http.StatusBadRequest, gin.H{"error": "pet does not belong to caller"})
		default:
			slog.Error("pet update failed", "error", err, "pet_id", petID, "user_id", callerID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "pet update failed"})
		}
		return
	}

	slog.Info("pet updated", "pet_id", pet.ID, "user_id", callerID)
	c.JSON(http.StatusOK, pet)
}

// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	petentity "pets_backend/internal/feature/pets/domain/entity"
	userentity "pets_backend/internal/feature/users/domain/entity"
	"pets_backend/internal/feature/users/transport/http/dto"
	"pets_backend/internal/feature/users/usecase"
	jwtmw "pets_backend/internal/platform/jwt"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// UpdateProfile はプロフィールを部分更新し、更新後のユーザーを返します。
	UpdateProfile(ctx context.Context, userID uint, patch usecase.ProfilePatch) (*userentity.User, error)
	// ListPets は指定されたユーザーが所有するペットを返します。
	ListPets(ctx context.Context, userID uint) ([]petentity.Pet, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Update はプロフィール更新APIエンドポイントを処理します。
//
// エンドポイント: PATCH /users（要認証）
// - 対象ユーザーはBearerトークンのsubjectから決定（リクエストボディでは指定不可）
// - パスワード確認不一致は400、対象ユーザー不在は404を返却
func (h *UserHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("user update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := usecase.ProfilePatch{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		default:
			slog.Error("user update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}

	slog.Info("user profile updated", "user_id", userID)
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListPets は認証済みユーザー自身のペット一覧APIエンドポイントを処理します。
//
// エンドポイント: GET /users/pets（要認証）
// ペットを所有していない場合は空配列を返却します（エラーではありません）。
func (h *UserHandler) ListPets(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pets, err := h.users.ListPets(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("listing user pets failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing pets failed"})
		return
	}

	c.JSON(http.StatusOK, pets)
}

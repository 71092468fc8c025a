package router

import (
	authhandler "pets_backend/internal/feature/auth/transport/handler"
	pethandler "pets_backend/internal/feature/pets/transport/handler"
	petvisionhandler "pets_backend/internal/feature/petvision/transport/handler"
	userhandler "pets_backend/internal/feature/users/transport/handler"
	jwtmw "pets_backend/internal/platform/jwt"

	platformhandler "pets_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter はアプリケーションの全ルートを構成したginエンジンを返します。
// visionはVision/Geminiクライアントが利用できない環境ではnilを許容します。
func NewRouter(auth *authhandler.AuthHandler, users *userhandler.UserHandler,
	pets *pethandler.PetHandler, vision *petvisionhandler.PetVisionHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// 新規ユーザー登録
	r.POST("/auth/register", auth.Register)
	// ログイン（JWT 発行）
	r.POST("/auth/login", auth.Login)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.PATCH("/users", users.Update)
		authed.GET("/users/pets", users.ListPets)

		authed.POST("/pets", pets.Create)
		authed.GET("/pets", pets.List)
		authed.PATCH("/pets/:id", pets.Update)

		if vision != nil {
			authed.POST("/petvision/detect", vision.DetectLabels)
			authed.POST("/petvision/advice", vision.AdviseCare)
		}
	}

	return r
}

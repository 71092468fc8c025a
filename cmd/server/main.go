package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"pets_backend/internal/app/di"
	"pets_backend/internal/app/router"
	authhandler "pets_backend/internal/feature/auth/transport/handler"
	authusecase "pets_backend/internal/feature/auth/usecase"
	petadapters "pets_backend/internal/feature/pets/adapters"
	pethandler "pets_backend/internal/feature/pets/transport/handler"
	petusecase "pets_backend/internal/feature/pets/usecase"
	petvisiongemini "pets_backend/internal/feature/petvision/adapters/gemini"
	petvisionvision "pets_backend/internal/feature/petvision/adapters/vision"
	petvisionhandler "pets_backend/internal/feature/petvision/transport/handler"
	petvisionusecase "pets_backend/internal/feature/petvision/usecase"
	useradapters "pets_backend/internal/feature/users/adapters"
	userhandler "pets_backend/internal/feature/users/transport/handler"
	userusecase "pets_backend/internal/feature/users/usecase"
	infradb "pets_backend/internal/platform/db"
	jwtmw "pets_backend/internal/platform/jwt"
	infraredis "pets_backend/internal/platform/redis"
	"pets_backend/internal/shared/ratelimiter"
)

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without listing cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := useradapters.NewUserPostgres(db)
	petRepo := petadapters.NewPetPostgres(db)
	// 一覧取得はRedisキャッシュでラップ（Redis不在時は素のリポジトリ）
	cachedPetRepo := di.NewPetRepository(rdb, db, 5*time.Minute)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, petRepo)
	petUC := petusecase.NewPetUsecase(cachedPetRepo, userRepo)
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), jwtmw.DefaultTokenLifetime)
	authUC := authusecase.NewAuthUsecase(userUC, jwtGen)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := userhandler.NewUserHandler(userUC)
	petH := pethandler.NewPetHandler(petUC)

	// PetVision（Vision/Geminiが使えない環境では機能ごと無効化）
	var visionH *petvisionhandler.PetVisionHandler
	detector, err := petvisionvision.NewVisionLabelDetector(ctx)
	if err != nil {
		log.Println("[WARN] Vision client unavailable. Running without petvision:", err)
	} else {
		defer func() {
			if err := detector.Close(); err != nil {
				log.Println("[ERROR] Failed to close Vision client:", err)
			}
		}()
		advisor, err := petvisiongemini.NewGeminiAdvisor(ctx)
		if err != nil {
			log.Println("[WARN] Gemini client unavailable. Running without petvision:", err)
		} else {
			// 外部APIの固定ポリシー: 60回/分
			limiter := ratelimiter.NewRateLimiter(60, time.Minute)
			visionUC := petvisionusecase.NewPetVisionUsecase(detector, advisor, limiter)
			visionH = petvisionhandler.NewPetVisionHandler(visionUC)
		}
	}

	// ルータ生成
	r := router.NewRouter(authH, userH, petH, visionH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

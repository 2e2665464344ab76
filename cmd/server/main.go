package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"estate_backend/internal/app/router"
	authadapters "estate_backend/internal/feature/auth/adapters"
	authhandler "estate_backend/internal/feature/auth/transport/handler"
	authusecase "estate_backend/internal/feature/auth/usecase"
	propadapters "estate_backend/internal/feature/property/adapters"
	prophandler "estate_backend/internal/feature/property/transport/handler"
	propusecase "estate_backend/internal/feature/property/usecase"
	"estate_backend/internal/platform/cache"
	"estate_backend/internal/platform/config"
	infradb "estate_backend/internal/platform/db"
	jwtmw "estate_backend/internal/platform/jwt"
	infraredis "estate_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		log.Println("[WARN] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	propRepo := propadapters.NewPropertyGorm(db)
	cachedPropRepo := cache.NewCachingPropertyRepository(rdb, cfg.CacheTTL, propRepo, "properties")

	// Token issuer / verifier share the configured secret
	issuer := jwtmw.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, cfg.BcryptCost)
	propUC := propusecase.NewPropertyUsecase(cachedPropRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	propH := prophandler.NewPropertyHandler(propUC)

	r := router.NewRouter(authH, propH, verifier)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

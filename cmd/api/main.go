package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"realestate/internal/config"
	"realestate/internal/database"
	"realestate/internal/domain/auth"
	"realestate/internal/domain/property"
	"realestate/internal/middleware"
	jwtsvc "realestate/internal/pkg/jwt"
	"realestate/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(db, &auth.User{}, &property.Property{}, &property.Image{}); err != nil {
		log.Fatal(err)
	}

	blobs, err := storage.NewDisk(cfg.UploadsDir)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(auth.NewRepository(db), j)
	authHandler := auth.NewHandler(authService)

	propertyService := property.NewService(property.NewRepository(db), blobs)
	propertyHandler := property.NewHandler(propertyService)

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	// Bound in-memory multipart buffering by the per-image size cap.
	r.MaxMultipartMemory = cfg.MaxUploadKB << 10

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		auth.RegisterRoutes(v1, authHandler)

		// every property route requires an authenticated identity
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			property.RegisterRoutes(protected, propertyHandler, middleware.AgentOnly())
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

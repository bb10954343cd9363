package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rakshakmorcha/internal/config"
	"rakshakmorcha/internal/database"
	"rakshakmorcha/internal/mailer"
	"rakshakmorcha/internal/middleware"
	"rakshakmorcha/internal/modules/admin"
	"rakshakmorcha/internal/modules/contact"
	"rakshakmorcha/internal/modules/media"
	"rakshakmorcha/internal/modules/socialwork"
	jwtsvc "rakshakmorcha/internal/pkg/jwt"
	"rakshakmorcha/internal/storage"
)

const sessionTTL = 24 * time.Hour

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store := selectStore(cfg.DatabaseURL)

	mail := mailer.New(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailTo)
	mail.Probe()

	jwtService := jwtsvc.New(cfg.JWTSecret, sessionTTL)

	adminService, err := admin.NewService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash, jwtService)
	if err != nil {
		log.Fatal(err)
	}

	r := buildRouter(cfg, store, mail, jwtService, adminService)

	log.Printf("listening on :%s (storage=%s, mail=%t)", cfg.Port, store.Mode(), mail.Configured())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// selectStore picks the persistence backend once at startup: the database
// when reachable, the in-memory fallback otherwise. Handlers only ever see
// the Store interface.
func selectStore(databaseURL string) storage.Store {
	if databaseURL == "" {
		log.Println("storage: DATABASE_URL not set, using in-memory fallback store")
		return storage.NewMemoryStore()
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Printf("storage: database unreachable, using in-memory fallback store: %v", err)
		return storage.NewMemoryStore()
	}

	gormStore, err := storage.NewGormStore(db)
	if err != nil {
		log.Printf("storage: migration failed, using in-memory fallback store: %v", err)
		return storage.NewMemoryStore()
	}
	return gormStore
}

func buildRouter(
	cfg *config.Config,
	store storage.Store,
	mail mailer.Sender,
	jwtService *jwtsvc.Service,
	adminService *admin.Service,
) *gin.Engine {
	contactHandler := contact.NewHandler(mail)
	adminHandler := admin.NewHandler(adminService)
	mediaHandler := media.NewHandler(media.NewService(store, cfg.UploadDir, cfg.StaticBase))
	socialWorkHandler := socialwork.NewHandler(socialwork.NewService(store))

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(), middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadDir)

	r.GET("/", func(c *gin.Context) {
		email := "not configured"
		if mail.Configured() {
			email = "configured"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Server running",
			"status":  "OK",
			"email":   email,
			"storage": store.Mode(),
		})
	})

	api := r.Group("/api")
	{
		contactHandler.RegisterRoutes(api)
		adminHandler.RegisterPublicRoutes(api)
		mediaHandler.RegisterPublicRoutes(api)
		socialWorkHandler.RegisterPublicRoutes(api)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.Auth(jwtService))
		{
			adminHandler.RegisterAdminRoutes(adminGroup)
			mediaHandler.RegisterAdminRoutes(adminGroup)
			socialWorkHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}

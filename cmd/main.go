package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quillist/config"
	_ "quillist/docs"
	"quillist/internal/handler"
	"quillist/internal/mail"
	"quillist/internal/model"
	"quillist/internal/repository"
	"quillist/internal/security"
	"quillist/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Quillist
// @version 1.0
// @description REST API книжного сервиса: книги, отзывы, теги и аккаунты

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tagRepo := repository.NewTagRepository(db)
	blocklistRepo := repository.NewBlocklistRepository(redisClient)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.S3AndRedis)*time.Second)

	jwtService, err := security.NewJWTService(&cfg.JWT, &cfg.OpaqueToken)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	mailer, err := mail.NewMailer(&cfg.Mail)
	if err != nil {
		log.Fatalf("Ошибка создания SMTP клиента: %v", err)
	}

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	authService := service.NewAuthenticationService(userRepo, jwtService, blocklistRepo, mailer, cfg.APIURL)
	bookService := service.NewBookService(bookRepo, cacheRepo, s3Service, time.Duration(cfg.TTL.S3AndRedis)*time.Second)
	reviewService := service.NewReviewService(reviewRepo, bookRepo)
	tagService := service.NewTagService(tagRepo, bookRepo)

	authHandler := handler.NewAuthenticationHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	tagHandler := handler.NewTagHandler(tagService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService, blocklistRepo, userRepo)
	setupBookRoutes(router, bookHandler, jwtService, blocklistRepo, userRepo)
	setupReviewRoutes(router, reviewHandler, jwtService, blocklistRepo, userRepo)
	setupTagRoutes(router, tagHandler, jwtService, blocklistRepo, userRepo)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService, blocklist *repository.BlocklistRepository, userRepo *repository.UserRepository) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Get("/verify/{token}", h.Verify)
		r.Post("/login", h.Login)
		r.Post("/password-reset-request", h.PasswordResetRequest)
		r.Post("/password-reset-confirm/{token}", h.PasswordResetConfirm)
		r.Post("/send-mail", h.SendMail)

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(security.RefreshToken, jwtService, blocklist))
			r.Get("/refresh-token", h.RefreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(security.AccessToken, jwtService, blocklist))
			r.Get("/logout", h.Logout)

			r.Group(func(r chi.Router) {
				r.Use(security.RoleMiddleware(userRepo, model.RoleAdmin, model.RoleUser))
				r.Get("/me", h.Me)
			})
		})
	})
}

func setupBookRoutes(r chi.Router, h *handler.BookHandler, jwtService *security.JWTService, blocklist *repository.BlocklistRepository, userRepo *repository.UserRepository) {
	r.Route("/api/v1/books", func(r chi.Router) {
		r.Use(security.JWTMiddleware(security.AccessToken, jwtService, blocklist))
		r.Use(security.RoleMiddleware(userRepo, model.RoleAdmin, model.RoleUser))

		r.Get("/", h.ListBooks)
		r.Post("/", h.CreateBook)
		r.Get("/user/{uid}", h.ListUserBooks)

		r.Route("/{uid}", func(r chi.Router) {
			r.Get("/", h.GetBook)
			r.Put("/", h.UpdateBook)
			r.Delete("/", h.DeleteBook)
			r.Get("/cover", h.CoverGet)
			r.Post("/cover", h.CoverUpload)
		})
	})
}

func setupReviewRoutes(r chi.Router, h *handler.ReviewHandler, jwtService *security.JWTService, blocklist *repository.BlocklistRepository, userRepo *repository.UserRepository) {
	r.Route("/api/v1/reviews", func(r chi.Router) {
		r.Use(security.JWTMiddleware(security.AccessToken, jwtService, blocklist))
		r.Use(security.RoleMiddleware(userRepo, model.RoleAdmin, model.RoleUser))

		r.Get("/book/{bookUid}", h.ListBookReviews)
		r.Post("/book/{bookUid}", h.AddReview)
		r.Get("/{uid}", h.GetReview)
		r.Delete("/{uid}", h.DeleteReview)
	})
}

func setupTagRoutes(r chi.Router, h *handler.TagHandler, jwtService *security.JWTService, blocklist *repository.BlocklistRepository, userRepo *repository.UserRepository) {
	r.Route("/api/v1/tags", func(r chi.Router) {
		r.Use(security.JWTMiddleware(security.AccessToken, jwtService, blocklist))
		r.Use(security.RoleMiddleware(userRepo, model.RoleAdmin, model.RoleUser))

		r.Get("/", h.ListTags)
		r.Post("/", h.CreateTag)
		r.Put("/{uid}", h.UpdateTag)
		r.Delete("/{uid}", h.DeleteTag)
		r.Get("/book/{bookUid}", h.ListBookTags)
		r.Post("/book/{bookUid}", h.AddTagsToBook)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}

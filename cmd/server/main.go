package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jeevanantham/portfolio/backend/internal/handler"
	"github.com/jeevanantham/portfolio/backend/internal/logging"
	"github.com/jeevanantham/portfolio/backend/internal/mail"
	"github.com/jeevanantham/portfolio/backend/internal/repository"
	"github.com/jeevanantham/portfolio/backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	ownerEmail := os.Getenv("OWNER_EMAIL")
	if ownerEmail == "" {
		ownerEmail = "mjeevanantham04@gmail.com"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mailer := mail.NewGmailMailer()
	if mailer.User() == "" {
		slog.Warn("Gmail SMTP credentials not configured; submissions will fail until GMAIL_USER and GMAIL_APP_PASSWORD are set")
	}

	resumeRepo := repository.NewFileResumeRequestRepository(
		filepath.Join(dataDir, "resume-requests.json"))

	contactService := service.NewContactService(mailer, mailer.User(), ownerEmail)
	resumeService := service.NewResumeRequestService(resumeRepo, mailer, mailer.User(), ownerEmail)

	h := handler.New(frontendURL)
	healthHandler := handler.NewHealthHandler(resumeRepo)
	contactHandler := handler.NewContactHandler(contactService)
	resumeHandler := handler.NewResumeRequestHandler(resumeService)
	blogHandler := handler.NewBlogHandler()
	adminHandler := handler.NewAdminHandler(resumeRepo, os.Getenv("ADMIN_TOKEN"))

	// Coarse per-IP guard on the two submission endpoints. The per-email
	// 24-hour rule is enforced separately by the resume service.
	limiter := handler.NewRateLimiter(10)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.Handle("POST /api/contact", limiter.Middleware(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/resume-request", limiter.Middleware(http.HandlerFunc(resumeHandler.Submit)))
	mux.HandleFunc("GET /api/blog", blogHandler.List)
	mux.HandleFunc("GET /api/blog/{slug}", blogHandler.Get)
	mux.HandleFunc("GET /api/admin/resume-requests", adminHandler.List)
	mux.HandleFunc("GET /api/admin/resume-requests/stats", adminHandler.Stats)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"selfcare_portal/internal/config"
	"selfcare_portal/internal/handler"
	"selfcare_portal/internal/logger"
	"selfcare_portal/internal/repository"
	"selfcare_portal/internal/service"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == config.DevJWTSecret {
		zlog.Warn("JWT_SECRET_KEY not set, using development secret")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.SessionTTL)

	seed, err := cfg.SeedAccounts()
	if err != nil {
		return err
	}

	// --- Initialize Repositories ---
	var checks []func(context.Context) error

	var accountRepo repository.AccountRepository
	switch cfg.StoreDriver {
	case config.StorePostgres:
		dbCfg, err := config.LoadDBConfig()
		if err != nil {
			return fmt.Errorf("failed to load DB config: %w", err)
		}
		dbPool, err := config.ConnectDB(ctx, dbCfg, zlog)
		if err != nil {
			return err
		}
		defer dbPool.Close()

		// --- Auto Migration ---
		if err := config.AutoMigrate(ctx, dbPool); err != nil {
			return err
		}
		if err := config.InsertSeedAccounts(ctx, dbPool, seed); err != nil {
			return err
		}
		accountRepo = repository.NewAccountRepository(dbPool)
	default:
		accountRepo, err = repository.NewMemoryAccountRepository(seed...)
		if err != nil {
			return err
		}
	}
	checks = append(checks, accountRepo.Ping)
	zlog.Info("account store ready", zap.String("driver", cfg.StoreDriver), zap.Int("seeded", len(seed)))

	var codes service.CodeVerifier
	switch cfg.ResetCodeMode {
	case config.ResetCodeStored:
		var codeRepo repository.ResetCodeRepository
		if cfg.ResetCodeStore == config.StoreRedis {
			client, err := config.ConnectRedis(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()
			codeRepo = repository.NewRedisResetCodeRepository(client, "")
			checks = append(checks, func(ctx context.Context) error { return client.Ping(ctx).Err() })
		} else {
			codeRepo = repository.NewMemoryResetCodeRepository()
		}
		codes = service.NewStoredCodeVerifier(codeRepo, cfg.ResetCodeTTL)
	default:
		codes = service.NewStaticCodeVerifier(cfg.ResetCode)
	}
	zlog.Info("reset codes configured", zap.String("mode", cfg.ResetCodeMode), zap.String("store", cfg.ResetCodeStore))

	// --- Initialize Services ---
	sms := service.NewLogSMSSender(zlog.Named("sms"), !cfg.IsProduction())
	authService := service.NewAuthService(accountRepo, jwtUtil, codes, sms, cfg.SMSDelay, zlog.Named("auth"))

	// --- Setup Gin Router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := handler.NewRouter(handler.RouterDeps{
		Auth:   authService,
		JWT:    jwtUtil,
		Routes: cfg.Routes,
		Cookie: handler.CookieConfig{TTL: cfg.SessionTTL, Secure: cfg.IsProduction()},
		Log:    zlog,
		Health: func(ctx context.Context) error {
			for _, check := range checks {
				if err := check(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// --- Graceful Shutdown ---
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	zlog.Info("server exiting")
	return nil
}

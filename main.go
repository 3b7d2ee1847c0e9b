// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kpasag/MedTime/config"
	"github.com/kpasag/MedTime/database"
	accountRepoPkg "github.com/kpasag/MedTime/database/repository/account"
	reminderRepoPkg "github.com/kpasag/MedTime/database/repository/reminder"
	"github.com/kpasag/MedTime/handlers"
	"github.com/kpasag/MedTime/middleware"
	"github.com/kpasag/MedTime/routes"
	"github.com/kpasag/MedTime/services/account"
	"github.com/kpasag/MedTime/services/drug"
	"github.com/kpasag/MedTime/services/linking"
	"github.com/kpasag/MedTime/services/reminder"
	"github.com/kpasag/MedTime/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Identity provider. Without Firebase credentials, fall back to local
	// HS256 verification for development.
	var verifier utils.IdentityVerifier
	if config.AppConfig.FirebaseCredentialsFile != "" {
		verifier = utils.FirebaseInit()
	} else {
		if config.AppConfig.JWTSecret == "" {
			logger.Sugar().Fatal("main: neither FIREBASE_CREDENTIALS_FILE nor JWT_SECRET is configured")
		}
		logger.Sugar().Warn("main: no Firebase credentials configured, using local HS256 token verification")
		verifier = utils.NewLocalVerifier(config.AppConfig.JWTSecret)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accRepo := accountRepoPkg.NewMongoAccountRepo()
	remRepo := reminderRepoPkg.NewMongoReminderRepo()

	// services.
	accountService := &account.DefaultAccountService{
		Repo:      accRepo,
		Reminders: remRepo,
	}
	reminderService := &reminder.DefaultReminderService{
		Repo:     remRepo,
		Accounts: accRepo,
	}
	linkingService := &linking.DefaultLinkingService{
		Repo: accRepo,
	}
	drugService := &drug.DefaultSuggestionService{
		BaseURL:  config.AppConfig.DrugAPIBaseURL,
		Limit:    config.AppConfig.DrugSuggestLimit,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.DrugSuggestCacheTTLMin) * time.Minute,
	}

	accountHandler := handlers.NewAccountHandler(accountService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	linkingHandler := handlers.NewLinkingHandler(linkingService)
	drugHandler := handlers.NewDrugHandler(drugService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier:  verifier,
		AuthCache: utils.GetAuthCacheClient(),

		// Account endpoints.
		CreateAccountHandler: accountHandler.CreateAccountHandler,
		GetAccountHandler:    accountHandler.GetAccountHandler,

		// Reminder endpoints.
		ListRemindersHandler:   reminderHandler.ListRemindersHandler,
		AddReminderHandler:     reminderHandler.AddReminderHandler,
		UpdateReminderHandler:  reminderHandler.UpdateReminderHandler,
		DeleteReminderHandler:  reminderHandler.DeleteReminderHandler,
		MarkDoseTakenHandler:   reminderHandler.MarkDoseTakenHandler,
		UnmarkDoseTakenHandler: reminderHandler.UnmarkDoseTakenHandler,

		// Linking endpoints.
		LinkCaregiverHandler: linkingHandler.LinkCaregiverHandler,
		LinkPatientHandler:   linkingHandler.LinkPatientHandler,

		// Drug suggestion endpoint.
		DrugSuggestHandler: drugHandler.SuggestHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

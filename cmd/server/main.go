package main

import (
	"net/http"

	"movemate/internal/api/handlers"
	"movemate/internal/app"
	"movemate/internal/auth"
	"movemate/internal/config"
	"movemate/internal/logger"
	"movemate/internal/repository/postgres"
	"movemate/internal/service/llm"
	"movemate/internal/service/search"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func main() {
	appConfig, err := config.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load configuration")
	}

	database, err := postgres.NewPostgresDB(appConfig.Database)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close()

	llmProvider, err := llm.NewLLMProvider(&appConfig.LLM, appConfig.Models)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create LLM provider")
	}

	searchClient := search.NewClient(&appConfig.Search)

	cfg := app.NewConfig(database, searchClient, llmProvider, appConfig)
	authService := auth.NewService(appConfig.Auth)

	authHandlers := handlers.NewAuthHandlers(cfg, authService)
	chatHandlers := handlers.NewChatHandlers(cfg)

	// Go 1.22+ routing with method prefixes and path parameters
	mux := http.NewServeMux()

	corsHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.WriteHeader(http.StatusOK)
	}

	// Public routes
	mux.HandleFunc("POST /api/auth/login", enableCORS(authHandlers.LoginHandler))
	mux.HandleFunc("OPTIONS /api/auth/login", corsHandler)
	mux.HandleFunc("POST /api/auth/register", enableCORS(authHandlers.RegisterHandler))
	mux.HandleFunc("OPTIONS /api/auth/register", corsHandler)
	mux.HandleFunc("GET /api/health", enableCORS(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	mux.HandleFunc("OPTIONS /api/health", corsHandler)

	// Protected routes
	mux.HandleFunc("POST /chat", enableCORS(authService.Middleware(chatHandlers.ChatHandler)))
	mux.HandleFunc("OPTIONS /chat", corsHandler)
	mux.HandleFunc("POST /start_chat", enableCORS(authService.Middleware(chatHandlers.StartChatHandler)))
	mux.HandleFunc("OPTIONS /start_chat", corsHandler)
	mux.HandleFunc("GET /conversations/{user_id}", enableCORS(authService.Middleware(chatHandlers.GetConversationsHandler)))
	mux.HandleFunc("OPTIONS /conversations/{user_id}", corsHandler)
	mux.HandleFunc("GET /conversation/{conversation_id}/messages", enableCORS(authService.Middleware(chatHandlers.GetConversationMessagesHandler)))
	mux.HandleFunc("OPTIONS /conversation/{conversation_id}/messages", corsHandler)
	mux.HandleFunc("DELETE /conversation/{conversation_id}", enableCORS(authService.Middleware(chatHandlers.DeleteConversationHandler)))
	mux.HandleFunc("OPTIONS /conversation/{conversation_id}", corsHandler)
	mux.HandleFunc("POST /conversation/{conversation_id}/title", enableCORS(authService.Middleware(chatHandlers.RegenerateTitleHandler)))
	mux.HandleFunc("OPTIONS /conversation/{conversation_id}/title", corsHandler)

	port := appConfig.Server.Port
	logger.Log.WithField("port", port).Info("Server starting")

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Log.WithError(err).Fatal("Server failed to start")
	}
}

// @title         recipebot API
// @version       1.0
// @description   Backend for a recipe-suggestion chatbot: forwards conversation history to an LLM completion API and returns the extended history.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	// internal imports
	"github.com/artem13815/recipebot/api/http"
	"github.com/artem13815/recipebot/api/http/handlers"
	"github.com/artem13815/recipebot/pkg/chat"
	"github.com/artem13815/recipebot/pkg/config"
	"github.com/artem13815/recipebot/pkg/health"
	"github.com/artem13815/recipebot/pkg/health/checkers"
	"github.com/artem13815/recipebot/pkg/llm/openai"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY не задан: запросы к /chat будут завершаться ошибкой")
	}

	// Wire dependencies (Clean Architecture)
	llmClient := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.ModelName)
	agent := chat.NewAgent(llmClient)
	chatHandler := handlers.NewChatHandler(agent, llmClient.Model)

	// Health service: compose checkers
	readiness := health.NewService(checkers.NewLLMChecker(cfg.OpenAIAPIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, chatHandler, healthHandler)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s (model %s)", port, cfg.ModelName)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/carbon"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/db"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/goals"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/llm"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/scan"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/session"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("Missing env var: DATABASE_URL")
	}

	// A missing Gemini credential is not fatal: the parse endpoint
	// answers with its fallback payload instead.
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("GEMINI_API_KEY not set, receipt parsing will return fallbacks")
	}

	// ───────────────────────── DB ─────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	pool, err := db.Connect(ctx, db.DefaultConfig(os.Getenv("DATABASE_URL")))
	cancel()
	if err != nil {
		log.Fatal("Postgres connection failed: ", err)
	}
	defer pool.Close()

	// ───────────────────────── SESSION ─────────────────────────
	store := session.NewClient(
		os.Getenv("STORE_URL"),
		os.Getenv("STORE_ANON_KEY"),
		os.Getenv("SESSION_FILE"),
	)
	if err := store.Load(); err != nil {
		log.Println("Could not restore store session:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	gemini := llm.NewGeminiClient(
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"),
	)

	carbonRepo := carbon.NewPostgresRepository(pool)
	scanRepo := scan.NewPostgresRepository(pool)
	goalsRepo := goals.NewPostgresRepository(pool)

	scanService := scan.NewService(scanRepo, gemini, carbonRepo)

	scanHandler := scan.NewHandler(scanService)
	goalsHandler := goals.NewHandler(goalsRepo)
	carbonHandler := carbon.NewHandler(carbonRepo)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "apikey"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Keep the hosted-store session alive for the application layer.
	r.POST("/session/refresh", func(c *gin.Context) {
		if _, err := store.Token(c.Request.Context()); err != nil {
			c.JSON(502, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "refreshed"})
	})

	// ───────────────────────── ROUTES ─────────────────────────
	scanGroup := r.Group("/scan")
	{
		scanGroup.POST("/parse-receipt", scanHandler.ParseReceipt)
		scanGroup.POST("/receipts", scanHandler.SaveReceipt)
		scanGroup.GET("/receipts", scanHandler.ListReceipts)
		scanGroup.GET("/receipts/:id", scanHandler.GetReceipt)
	}

	goalsGroup := r.Group("/goals")
	{
		goalsGroup.GET("", goalsHandler.GetGoals)
		goalsGroup.PUT("", goalsHandler.UpsertGoals)
	}

	carbonGroup := r.Group("/carbon")
	{
		carbonGroup.GET("/categories", carbonHandler.ListCategories)
		carbonGroup.GET("/achievements", carbonHandler.ListAchievements)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

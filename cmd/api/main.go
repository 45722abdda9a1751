package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/shrvya4/Glucose-Guardian/internal/advice"
	"github.com/shrvya4/Glucose-Guardian/internal/auth"
	"github.com/shrvya4/Glucose-Guardian/internal/db"
	"github.com/shrvya4/Glucose-Guardian/internal/glucose"
	"github.com/shrvya4/Glucose-Guardian/internal/llm"
	"github.com/shrvya4/Glucose-Guardian/internal/menu"
	"github.com/shrvya4/Glucose-Guardian/internal/middleware"
	"github.com/shrvya4/Glucose-Guardian/internal/places"
	"github.com/shrvya4/Glucose-Guardian/internal/recommend"
	"github.com/shrvya4/Glucose-Guardian/internal/storage"
	"github.com/shrvya4/Glucose-Guardian/internal/websearch"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"GOOGLE_API_KEY",
		"SERPER_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	mustHaveBinary("tesseract")

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	// Report archival is best effort, the API runs without R2.
	var archiver glucose.Archiver
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archiver = r2Client
	} else {
		log.Println("R2 not configured, report archival disabled")
	}

	// ───────────────────────── LLM ─────────────────────────
	llmClient, err := llm.NewFromEnv()
	if err != nil {
		log.Fatal("❌ LLM init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── GLUCOSE ─────────────────────────
	profileRepo := glucose.NewPostgresRepository(pgDB)
	summarizer := glucose.NewSummarizer(llmClient)
	glucoseHandler := glucose.NewHandler(summarizer, profileRepo, archiver)

	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.POST("/analyze", glucoseHandler.Analyze)
		reports.GET("/profile", glucoseHandler.GetProfile)
	}

	// ───────────────────────── PLACES ─────────────────────────
	placesAPI, err := places.NewGoogleClient()
	if err != nil {
		log.Fatal("❌ Google Maps init failed:", err)
	}
	placesService := places.NewService(placesAPI)
	placesHandler := places.NewHandler(placesService)

	// ───────────────────────── MENU PIPELINE ─────────────────────────
	searcher := websearch.NewSerperClient()
	fetcher := menu.NewFetcher()

	pipeline := menu.NewPipeline(
		menu.NewMapsStrategy(),
		menu.NewReviewSiteStrategy(searcher, fetcher),
		menu.NewWebsiteStrategy(placesAPI, fetcher),
		menu.NewSearchStrategy(searcher, fetcher),
		menu.NewSimulationStrategy(llmClient),
	)

	// ───────────────────────── RECOMMENDATIONS ─────────────────────────
	matcher := recommend.NewMatcher(llmClient)
	recommendHandler := recommend.NewHandler(pipeline, matcher, profileRepo)

	restaurants := r.Group("/restaurants")
	restaurants.Use(middleware.AuthMiddleware())
	{
		restaurants.POST("/discover", placesHandler.Discover)
		restaurants.POST("/analyze", recommendHandler.AnalyzeRestaurant)
	}

	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware())
	{
		menus.POST("/analyze", recommendHandler.AnalyzeUploadedMenu)
	}

	// ───────────────────────── ADVICE ─────────────────────────
	adviceHandler := advice.NewHandler(llmClient)

	adviceGroup := r.Group("/advice")
	adviceGroup.Use(middleware.AuthMiddleware())
	{
		adviceGroup.POST("", adviceHandler.Ask)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8080")
	r.Run(":8080")
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}

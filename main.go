package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nextgenfoodcourt/foodcourt-app/config"
	"github.com/nextgenfoodcourt/foodcourt-app/database"
	"github.com/nextgenfoodcourt/foodcourt-app/middlewares"
	"github.com/nextgenfoodcourt/foodcourt-app/router"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}

	// Token revocation backed by Redis so logouts hold across restarts
	// and instances; without REDIS_ADDR the in-process store stays in.
	if redisClient := config.NewRedisClient(); redisClient != nil {
		utils.SetTokenRevoker(utils.NewRedisTokenRevoker(redisClient))
		utils.InfoLogger.Println("Token revocation store: redis")
	} else {
		utils.InfoLogger.Println("Token revocation store: in-memory (REDIS_ADDR not set)")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5555"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-service/internal/config"
	"media-service/internal/db"
	"media-service/internal/event"
	"media-service/internal/handlers"
	"media-service/internal/middleware"
	"media-service/internal/repository"
	"media-service/internal/service"
	"media-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)

	db.InitMongo(cfg.MongoURI)
	defer db.DisconnectMongo()
	db.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// RabbitMQ analytics publisher
	var publisher *event.AnalyticsPublisher
	if cfg.RabbitMQURI != "" {
		var err error
		publisher, err = event.NewAnalyticsPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange, cfg.ServiceName)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, analytics events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FEAddress, cfg.ShareBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)
	cache := repository.NewCacheRepository(db.RedisClient)

	// Articles
	articleService := service.NewArticleService(repository.NewArticleRepository(database))
	articleHandler := handlers.NewArticleHandler(articleService)

	// Videos
	videoService := service.NewVideoService(repository.NewVideoRepository(database))
	videoHandler := handlers.NewVideoHandler(videoService)

	// Research
	researchService := service.NewResearchService(repository.NewResearchRepository(database))
	researchHandler := handlers.NewResearchHandler(researchService)

	// Legal commentary
	legalService := service.NewLegalService(repository.NewLegalRepository(database))
	legalHandler := handlers.NewLegalHandler(legalService)

	// Tickers and banners
	tickerService := service.NewTickerService(repository.NewTickerRepository(database), cache)
	tickerHandler := handlers.NewTickerHandler(tickerService)

	// Users and settings
	userHandler := handlers.NewUserHandler(service.NewUserService(repository.NewUserRepository(database)))
	settingsHandler := handlers.NewSettingsHandler(service.NewSettingsService(repository.NewSettingsRepository(database)))

	// Playground
	playgroundService := service.NewPlaygroundService(repository.NewAttemptRepository(database))
	playgroundHandler := handlers.NewPlaygroundHandler(playgroundService, publisher)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": cfg.ServiceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupContentRoutes(r, publisher, articleHandler, videoHandler, researchHandler, legalHandler)
	setupSiteRoutes(r, tickerHandler, settingsHandler, userHandler)
	setupPlaygroundRoutes(r, playgroundHandler)

	// Consul registration is optional for local runs
	var registry *discovery.ServiceRegistry
	if cfg.ConsulAddress != "" {
		var err error
		registry, err = discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Service discovery init failed: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Consul registration failed: %v", err)
		}
	}

	go func() {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if registry != nil {
		if err := registry.Deregister(); err != nil {
			log.Printf("Consul deregistration failed: %v", err)
		}
	}
}

func setupContentRoutes(r *gin.Engine, publisher *event.AnalyticsPublisher, articleHandler *handlers.ArticleHandler, videoHandler *handlers.VideoHandler, researchHandler *handlers.ResearchHandler, legalHandler *handlers.LegalHandler) {
	publicArticle := r.Group("/public/media/article")
	{
		publicArticle.GET("/", articleHandler.ListArticles)
		publicArticle.GET("/:id", func(c *gin.Context) {
			articleHandler.GetArticle(c)
			if publisher != nil {
				publisher.Publish("media.article.viewed", gin.H{"id": c.Param("id")})
			}
		})
		publicArticle.GET("/slug/:slug", articleHandler.GetArticleBySlug)
		publicArticle.GET("/:id/related", articleHandler.GetRelated)
	}

	publicVideo := r.Group("/public/media/video")
	{
		publicVideo.GET("/", videoHandler.ListVideos)
		publicVideo.GET("/:id", func(c *gin.Context) {
			videoHandler.GetVideo(c)
			if publisher != nil {
				publisher.Publish("media.video.viewed", gin.H{"id": c.Param("id")})
			}
		})
	}

	publicResearch := r.Group("/public/media/research")
	{
		publicResearch.GET("/", researchHandler.ListItems)
		publicResearch.GET("/:id", researchHandler.GetItem)
	}

	publicLegal := r.Group("/public/media/legal")
	{
		publicLegal.GET("/", legalHandler.ListPosts)
		publicLegal.GET("/:id", legalHandler.GetPost)
	}

	protectedArticle := r.Group("/protected/media/article")
	protectedArticle.Use(middleware.RequireAuth(), middleware.RequireEditor())
	{
		protectedArticle.GET("/", articleHandler.ListAllArticles)
		protectedArticle.POST("/", articleHandler.CreateArticle)
		protectedArticle.PUT("/:id", articleHandler.UpdateArticle)
		protectedArticle.DELETE("/:id", articleHandler.DeleteArticle)
	}

	protectedVideo := r.Group("/protected/media/video")
	protectedVideo.Use(middleware.RequireAuth(), middleware.RequireEditor())
	{
		protectedVideo.GET("/", videoHandler.ListAllVideos)
		protectedVideo.POST("/", videoHandler.CreateVideo)
		protectedVideo.PUT("/:id", videoHandler.UpdateVideo)
		protectedVideo.DELETE("/:id", videoHandler.DeleteVideo)
	}

	protectedResearch := r.Group("/protected/media/research")
	protectedResearch.Use(middleware.RequireAuth(), middleware.RequireEditor())
	{
		protectedResearch.GET("/", researchHandler.ListAllItems)
		protectedResearch.POST("/", researchHandler.CreateItem)
		protectedResearch.PUT("/:id", researchHandler.UpdateItem)
		protectedResearch.DELETE("/:id", researchHandler.DeleteItem)
	}

	protectedLegal := r.Group("/protected/media/legal")
	protectedLegal.Use(middleware.RequireAuth(), middleware.RequireEditor())
	{
		protectedLegal.GET("/", legalHandler.ListAllPosts)
		protectedLegal.POST("/", legalHandler.CreatePost)
		protectedLegal.PUT("/:id", legalHandler.UpdatePost)
		protectedLegal.DELETE("/:id", legalHandler.DeletePost)
	}
}

func setupSiteRoutes(r *gin.Engine, tickerHandler *handlers.TickerHandler, settingsHandler *handlers.SettingsHandler, userHandler *handlers.UserHandler) {
	publicSite := r.Group("/public/media/site")
	{
		publicSite.GET("/ticker/news", tickerHandler.GetNewsTicker)
		publicSite.GET("/ticker/sports", tickerHandler.GetSportsBanner)
		publicSite.GET("/settings", settingsHandler.GetSettings)
	}

	protectedTicker := r.Group("/protected/media/site/ticker")
	protectedTicker.Use(middleware.RequireAuth(), middleware.RequireEditor())
	{
		protectedTicker.GET("/", tickerHandler.ListItems)
		protectedTicker.GET("/:id", tickerHandler.GetItem)
		protectedTicker.POST("/", tickerHandler.CreateItem)
		protectedTicker.PUT("/:id", tickerHandler.UpdateItem)
		protectedTicker.DELETE("/:id", tickerHandler.DeleteItem)
	}

	protectedSettings := r.Group("/protected/media/site/settings")
	protectedSettings.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		protectedSettings.PUT("/", settingsHandler.SaveSettings)
	}

	protectedUser := r.Group("/protected/media/user")
	protectedUser.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		protectedUser.GET("/", userHandler.ListUsers)
		protectedUser.GET("/:id", userHandler.GetUser)
		protectedUser.POST("/", userHandler.CreateUser)
		protectedUser.PUT("/:id", userHandler.UpdateUser)
		protectedUser.PUT("/:id/role", userHandler.SetRole)
		protectedUser.DELETE("/:id", userHandler.DeleteUser)
	}
}

func setupPlaygroundRoutes(r *gin.Engine, playgroundHandler *handlers.PlaygroundHandler) {
	publicPlayground := r.Group("/public/media/playground")
	{
		publicPlayground.GET("/test", playgroundHandler.ListTests)
		publicPlayground.GET("/test/:testId", playgroundHandler.GetTest)
	}

	protectedPlayground := r.Group("/protected/media/playground")
	protectedPlayground.Use(middleware.RequireAuth())
	{
		protectedPlayground.POST("/test/:testId/attempt", playgroundHandler.StartAttempt)
		protectedPlayground.GET("/test/:testId/attempt", playgroundHandler.GetAttempt)
		protectedPlayground.POST("/test/:testId/answer", playgroundHandler.RecordAnswer)
		protectedPlayground.GET("/test/:testId/next", playgroundHandler.NextQuestion)
		protectedPlayground.POST("/test/:testId/submit", playgroundHandler.SubmitAttempt)
		protectedPlayground.GET("/test/:testId/result", playgroundHandler.GetResult)
		protectedPlayground.GET("/test/:testId/share", playgroundHandler.ShareResult)
		protectedPlayground.GET("/test/:testId/report", playgroundHandler.DownloadReport)
		protectedPlayground.DELETE("/test/:testId/attempt", playgroundHandler.ResetAttempt)
		protectedPlayground.GET("/results", playgroundHandler.ListResults)
	}
}

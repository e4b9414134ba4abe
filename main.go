package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/config"
	"github.com/HoangPhanDev98/jobhunt-backend/controllers"
	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/kv"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/requestid"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Accept-Encoding")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

func SlogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rlog := logger.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"request_id", requestid.Get(c),
		)

		start := time.Now()
		rlog.Debug("request started")
		c.Next()
		duration := time.Since(start)
		rlog.Info("request completed", "status", c.Writer.Status(), "duration", duration)
	}
}

func main() {
	//Load the .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			slog.Error("failed to load the env file")
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if cfg.Env == "PRODUCTION" {
		gin.SetMode(gin.ReleaseMode)
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	ctx := context.Background()

	mongo, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer mongo.Close(ctx)

	var limiterStore kv.KeyValueStore
	if cfg.RedisHost != "" {
		redis, err := kv.NewRedis(ctx, cfg.RedisHost, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			slog.Error("failed to connect to key-value store", "error", err)
			os.Exit(1)
		}
		limiterStore = redis
	} else {
		limiterStore = kv.NewMemory()
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(mongo.Users, service.AuthConfig{
		AccessSecret:  cfg.AccessSecret,
		AccessExpire:  cfg.AccessExpire,
		RefreshSecret: cfg.RefreshSecret,
		RefreshExpire: cfg.RefreshExpire,
	})
	userService := service.NewUserService(mongo.Users)
	companyService := service.NewCompanyService(mongo.Companies)
	jobService := service.NewJobService(mongo.Jobs)

	//Start the default gin server
	r := gin.Default()

	//Custom form validator
	binding.Validator = new(forms.DefaultValidator)

	r.Use(CORSMiddleware())
	r.Use(requestid.New(requestid.WithCustomHeaderStrKey("X-Request-Id")))
	r.Use(SlogMiddleware(logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	health := controllers.NewHealthController(mongo.Ping)
	r.GET("/health", health.Health)

	auth := controllers.NewAuthController(authService, userService)
	user := controllers.NewUserController(userService)
	company := controllers.NewCompanyController(companyService)
	job := controllers.NewJobController(jobService)
	file := controllers.NewFileController(cfg.UploadDir)

	api := r.Group("/api/v1")

	// Public routes: registration, login, refresh and the job-board
	// listings themselves.
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", controllers.RateLimit(limiterStore, cfg.LoginRateLimit, cfg.LoginRateWindow), auth.Login)
	api.POST("/auth/refresh", auth.Refresh)
	api.GET("/companies", company.List)
	api.GET("/companies/:id", company.Get)
	api.GET("/jobs", job.List)
	api.GET("/jobs/:id", job.Get)

	// Everything else requires a valid access token.
	authed := api.Group("", auth.Authenticate)
	authed.POST("/auth/logout", auth.Logout)
	authed.GET("/auth/account", auth.Account)

	authed.POST("/users", user.Create)
	authed.GET("/users", user.List)
	authed.GET("/users/:id", user.Get)
	authed.PATCH("/users/:id", user.Update)
	authed.DELETE("/users/:id", user.Delete)
	authed.POST("/users/:id/restore", user.Restore)

	authed.POST("/companies", company.Create)
	authed.PATCH("/companies/:id", company.Update)
	authed.DELETE("/companies/:id", company.Delete)
	authed.POST("/companies/:id/restore", company.Restore)

	authed.POST("/jobs", job.Create)
	authed.PATCH("/jobs/:id", job.Update)
	authed.DELETE("/jobs/:id", job.Delete)
	authed.POST("/jobs/:id/restore", job.Restore)

	authed.POST("/files/upload", file.Upload)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "ssl", cfg.SSL)

	if cfg.SSL {

		//Generated using sh generate-certificate.sh
		SSLKeys := &struct {
			CERT string
			KEY  string
		}{
			CERT: "./cert/myCA.cer",
			KEY:  "./cert/myCA.key",
		}

		r.RunTLS(":"+cfg.Port, SSLKeys.CERT, SSLKeys.KEY)
	} else {
		r.Run(":" + cfg.Port)
	}
}

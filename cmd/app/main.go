package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"lockers/cmd"
	"lockers/internal/adapters/out/identity"
	"lockers/internal/adapters/out/minio"
	"lockers/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	if err := postgres.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	storage, err := minio.NewObjectStorage(context.Background(), minio.Config{
		Endpoint:  configs.MinioEndpoint,
		AccessKey: configs.MinioAccessKey,
		SecretKey: configs.MinioSecretKey,
		Bucket:    configs.MinioBucket,
		UseSSL:    configs.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Error connecting to object storage: %v", err)
	}

	tokens, err := identity.NewJwtTokenService(configs.JWTSecret)
	if err != nil {
		log.Fatalf("Error creating token service: %v", err)
	}

	app := cmd.NewCompositionRoot(
		gormDB,
		storage,
		tokens,
		identity.NewBcryptPasswordHasher(),
	)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		MinioEndpoint:  goDotEnvVariable("MINIO_ENDPOINT"),
		MinioAccessKey: goDotEnvVariable("MINIO_ACCESS_KEY"),
		MinioSecretKey: goDotEnvVariable("MINIO_SECRET_KEY"),
		MinioBucket:    goDotEnvVariable("MINIO_BUCKET"),
		MinioUseSSL:    goDotEnvVariable("MINIO_USE_SSL") == "true",

		JWTSecret: goDotEnvVariable("JWT_SECRET"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

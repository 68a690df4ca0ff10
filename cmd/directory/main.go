package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/handlers"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort          int      `yaml:"HTTP_PORT"`
	DBHost            string   `yaml:"DB_HOST"`
	DBPort            int      `yaml:"DB_PORT"`
	DBUser            string   `yaml:"DB_USER"`
	DBPassword        string   `yaml:"DB_PASSWORD"`
	DBName            string   `yaml:"DB_NAME"`
	DBSSLMode         string   `yaml:"DB_SSLMODE"`
	KafkaBrokers      []string `yaml:"KAFKA_BROKERS"`
	Topic             string   `yaml:"TOPIC"`
	JWTSecret         string   `yaml:"JWT_SECRET"`
	AccessTTLMinutes  int      `yaml:"ACCESS_TTL_MINUTES"`
	RefreshTTLMinutes int      `yaml:"REFRESH_TTL_MINUTES"`
}

func main() {
	logger := initLogger()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := db.NewRepository(initDatabase(cfg))
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	defer producer.Close()

	tokens := auth.NewManager(cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTTLMinutes)*time.Minute)

	services := &handlers.Services{
		Users:     controller.NewUserService(repo, producer, logger),
		Auth:      controller.NewAuthService(repo, tokens, logger),
		Companies: controller.NewCompanyService(repo, producer, logger),
		Employees: controller.NewEmployeeService(repo, producer, logger),
		Offices:   controller.NewOfficeService(repo, producer, logger),
		Vehicles:  controller.NewVehicleService(repo, producer, logger),
		Locations: controller.NewLocationService(repo, logger),
	}

	server := handlers.NewServer(cfg.HTTPPort, services, tokens, repo, logger)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	waitForShutdown(server, logger)
}

// initLogger initializes a Zap production logger.
func initLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// loadConfig loads configuration from YAML, letting a local .env
// override the secrets.
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	configPath := filepath.Join("internal", "directory", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(file, &cfg)
	if err != nil {
		return nil, err
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DBPassword = password
	}
	return &cfg, nil
}

// initDatabase initializes the database connection settings.
func initDatabase(cfg *Config) *db.Config {
	return &db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}

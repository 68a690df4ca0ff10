// The seed tool loads the country/region/city reference data from a
// YAML fixture. It is idempotent: a database that already has
// countries is left untouched.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/RomanKhudobei/my-company/internal/directory/db"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config struct for YAML configuration
type Config struct {
	DBHost     string `yaml:"DB_HOST"`
	DBPort     int    `yaml:"DB_PORT"`
	DBUser     string `yaml:"DB_USER"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBName     string `yaml:"DB_NAME"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
}

type fixture struct {
	Countries []countryFixture `yaml:"countries"`
}

type countryFixture struct {
	Name    string          `yaml:"name"`
	Regions []regionFixture `yaml:"regions"`
}

type regionFixture struct {
	Name   string   `yaml:"name"`
	Cities []string `yaml:"cities"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := db.NewRepository(&db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	ctx := context.Background()
	count, err := repo.CountCountries(ctx)
	if err != nil {
		logger.Fatal("failed to count countries", zap.Error(err))
	}
	if count > 0 {
		logger.Info("Locations already seeded, nothing to do", zap.Int64("countries", count))
		return
	}

	fix, err := loadFixture()
	if err != nil {
		logger.Fatal("failed to load fixture", zap.Error(err))
	}

	if err := seed(ctx, repo, fix); err != nil {
		logger.Fatal("failed to seed locations", zap.Error(err))
	}
	logger.Info("Locations seeded", zap.Int("countries", len(fix.Countries)))
}

// seed loads the whole fixture in one transaction so a partial
// hierarchy never survives a failure.
func seed(ctx context.Context, repo *db.Repository, fix *fixture) error {
	return repo.WithTransaction(ctx, func(tx *db.Repository) error {
		for _, cf := range fix.Countries {
			country := &models.Country{ID: uuid.New(), Name: cf.Name}
			if err := tx.CreateCountry(ctx, country); err != nil {
				return err
			}
			for _, rf := range cf.Regions {
				region := &models.Region{ID: uuid.New(), Name: rf.Name, CountryID: country.ID}
				if err := tx.CreateRegion(ctx, region); err != nil {
					return err
				}
				for _, cityName := range rf.Cities {
					city := &models.City{ID: uuid.New(), Name: cityName, RegionID: region.ID}
					if err := tx.CreateCity(ctx, city); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	configPath := filepath.Join("internal", "directory", "config", "config.yaml")
	file, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DBPassword = password
	}
	return &cfg, nil
}

func loadFixture() (*fixture, error) {
	fixturePath := filepath.Join("internal", "directory", "config", "locations.yaml")
	file, err := os.ReadFile(fixturePath)
	if err != nil {
		return nil, err
	}
	var fix fixture
	if err := yaml.Unmarshal(file, &fix); err != nil {
		return nil, err
	}
	return &fix, nil
}

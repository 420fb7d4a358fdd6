// Command loadingredients bulk-loads the ingredient catalog from a CSV
// file with "name,measurement_unit" rows. Re-running it on the same file
// is idempotent: existing pairs are skipped.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"recipehub-backend/internal/config"
	ingredientModel "recipehub-backend/internal/domains/ingredient/model"
	ingredientRepo "recipehub-backend/internal/domains/ingredient/repository"
	ingredientService "recipehub-backend/internal/domains/ingredient/service"
	"recipehub-backend/internal/infrastructure/database"
	"recipehub-backend/pkg/logger"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "data/ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, using system environment variables")
	}
	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	inputs, err := readCSV(file)
	if err != nil {
		logger.Error().Err(err).Str("file", file).Msg("failed to read CSV")
		os.Exit(1)
	}

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	svc := ingredientService.NewIngredientService(ingredientRepo.NewPostgresIngredientRepository(db.Pool))

	created, err := svc.BulkImport(ctx, inputs)
	if err != nil {
		logger.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}

	logger.Info().
		Int("rows", len(inputs)).
		Int("created", created).
		Int("skipped", len(inputs)-created).
		Msg("ingredient import finished")
}

func readCSV(path string) ([]ingredientModel.IngredientInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	var inputs []ingredientModel.IngredientInput
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, ingredientModel.IngredientInput{
			Name:            record[0],
			MeasurementUnit: record[1],
		})
	}
	return inputs, nil
}

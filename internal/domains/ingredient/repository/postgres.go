package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipehub-backend/internal/domains/ingredient/model"
	"recipehub-backend/pkg/database"
)

type postgresIngredientRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresIngredientRepository(pool *pgxpool.Pool) IngredientRepository {
	return &postgresIngredientRepository{pool: pool}
}

func (r *postgresIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	query := `SELECT id, name, measurement_unit FROM ingredients WHERE id = $1`

	ing := &model.Ingredient{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return ing, nil
}

func (r *postgresIngredientRepository) Search(ctx context.Context, name string) ([]model.Ingredient, error) {
	var (
		query string
		args  []interface{}
	)

	if name == "" {
		query = `SELECT id, name, measurement_unit FROM ingredients ORDER BY name`
	} else {
		// Prefix matches rank before substring matches, each alphabetical.
		query = `
			SELECT id, name, measurement_unit
			FROM ingredients
			WHERE name ILIKE $1 OR name ILIKE $2
			ORDER BY
				CASE
					WHEN name ILIKE $1 THEN 1
					ELSE 2
				END,
				name
		`
		args = []interface{}{name + "%", "%" + name + "%"}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ingredients: %w", err)
	}

	return ingredients, nil
}

func (r *postgresIngredientRepository) BulkCreate(ctx context.Context, ingredients []model.Ingredient) (int, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	inserted, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		query := `
			INSERT INTO ingredients (id, name, measurement_unit)
			VALUES ($1, $2, $3)
			ON CONFLICT (name, measurement_unit) DO NOTHING
		`

		count := 0
		for _, ing := range ingredients {
			result, err := tx.Exec(ctx, query, ing.ID, ing.Name, ing.MeasurementUnit)
			if err != nil {
				return 0, fmt.Errorf("failed to insert ingredient %q: %w", ing.Name, err)
			}
			count += int(result.RowsAffected())
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *postgresIngredientRepository) ExistAll(ctx context.Context, ids []uuid.UUID) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	query := `SELECT COUNT(DISTINCT id) FROM ingredients WHERE id = ANY($1)`

	var count int
	if err := r.pool.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check ingredients: %w", err)
	}

	distinct := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}

	return count == len(distinct), nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipehub-backend/internal/domains/shoppinglist/model"
)

type shoppingListPostgres struct {
	db *pgxpool.Pool
}

func NewPostgresShoppingListRepository(pool *pgxpool.Pool) ShoppingListRepository {
	return &shoppingListPostgres{db: pool}
}

func (p *shoppingListPostgres) CartLines(ctx context.Context, userID uuid.UUID) ([]model.Line, error) {
	rows, err := p.db.Query(ctx, `
		SELECT i.name, i.measurement_unit, ri.amount
		FROM shopping_carts sc
		JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE sc.user_id = $1
		ORDER BY i.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart lines: %w", err)
	}
	defer rows.Close()

	lines := make([]model.Line, 0)
	for rows.Next() {
		var line model.Line
		if err := rows.Scan(&line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipehub-backend/internal/domains/relationship/model"
)

type relationshipPostgres struct {
	db *pgxpool.Pool
}

func NewPostgresRelationshipRepository(pool *pgxpool.Pool) RelationshipRepository {
	return &relationshipPostgres{db: pool}
}

// kindTables maps a ledger kind to its table. Table names never come from
// request input.
var kindTables = map[model.Kind]string{
	model.KindFavorite: "favorites",
	model.KindCart:     "shopping_carts",
}

func tableFor(kind model.Kind) (string, error) {
	table, ok := kindTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown relation kind %q", kind)
	}
	return table, nil
}

// AddRecipeRelation inserts the (user, recipe) pair. ON CONFLICT DO NOTHING
// plus the affected-rows check makes the duplicate race lose cleanly: both
// writers succeed at the SQL level, but only one inserts a row.
func (p *relationshipPostgres) AddRecipeRelation(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	tag, err := p.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (user_id, recipe_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, recipe_id) DO NOTHING`, table),
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to add %s relation: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyExists
	}
	return nil
}

func (p *relationshipPostgres) RemoveRecipeRelation(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	tag, err := p.db.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, table),
		userID, recipeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove %s relation: %w", kind, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRelationNotFound
	}
	return nil
}

func (p *relationshipPostgres) RecipeRelationExists(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	err = p.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE user_id = $1 AND recipe_id = $2)`, table),
		userID, recipeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check %s relation: %w", kind, err)
	}
	return exists, nil
}

func (p *relationshipPostgres) ListRecipeIDs(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx,
		fmt.Sprintf(`SELECT recipe_id FROM %s WHERE user_id = $1 ORDER BY created_at DESC`, table),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s relations: %w", kind, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *relationshipPostgres) AddSubscription(ctx context.Context, followerID, followeeID uuid.UUID) error {
	tag, err := p.db.Exec(ctx, `
		INSERT INTO subscriptions (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		// The follower <> followee check constraint backs up the service
		// guard in case a caller skips it.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return model.ErrSelfSubscription
		}
		return fmt.Errorf("failed to add subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAlreadyExists
	}
	return nil
}

func (p *relationshipPostgres) RemoveSubscription(ctx context.Context, followerID, followeeID uuid.UUID) error {
	tag, err := p.db.Exec(ctx,
		`DELETE FROM subscriptions WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRelationNotFound
	}
	return nil
}

func (p *relationshipPostgres) SubscriptionExists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subscriptions WHERE follower_id = $1 AND followee_id = $2)`,
		followerID, followeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return exists, nil
}

func (p *relationshipPostgres) ListFollowees(ctx context.Context, followerID uuid.UUID, page, limit int) ([]model.Followee, int, error) {
	rows, err := p.db.Query(ctx, `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name, u.avatar,
		       (SELECT COUNT(*) FROM recipes r WHERE r.author_id = u.id) AS recipes_count
		FROM subscriptions s
		JOIN users u ON u.id = s.followee_id
		WHERE s.follower_id = $1
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3`,
		followerID, limit, (page-1)*limit,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list followees: %w", err)
	}
	defer rows.Close()

	followees := make([]model.Followee, 0)
	for rows.Next() {
		var f model.Followee
		if err := rows.Scan(&f.ID, &f.Email, &f.Username, &f.FirstName, &f.LastName, &f.Avatar, &f.RecipesCount); err != nil {
			return nil, 0, err
		}
		f.IsSubscribed = true
		followees = append(followees, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	err = p.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE follower_id = $1`, followerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count followees: %w", err)
	}
	return followees, total, nil
}

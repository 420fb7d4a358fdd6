package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipehub-backend/internal/domains/recipe/model"
	tagmodel "recipehub-backend/internal/domains/tag/model"
	"recipehub-backend/pkg/database"
)

type recipePostgres struct {
	db *pgxpool.Pool
}

func NewPostgresRecipeRepository(pool *pgxpool.Pool) RecipeRepository {
	return &recipePostgres{db: pool}
}

// recipeSelect joins the author profile and annotates the row relative to
// the viewer passed as $1. uuid.Nil never matches, so anonymous viewers
// get false annotations for free.
const recipeSelect = `
	SELECT r.id, r.author_id, r.name, r.text, r.cooking_time, r.image, r.short_code,
	       r.created_at, r.updated_at,
	       u.email, u.username, u.first_name, u.last_name, u.avatar,
	       EXISTS(SELECT 1 FROM favorites f WHERE f.recipe_id = r.id AND f.user_id = $1) AS is_favorited,
	       EXISTS(SELECT 1 FROM shopping_carts sc WHERE sc.recipe_id = r.id AND sc.user_id = $1) AS is_in_shopping_cart,
	       EXISTS(SELECT 1 FROM subscriptions s WHERE s.follower_id = $1 AND s.followee_id = r.author_id) AS is_subscribed
	FROM recipes r
	JOIN users u ON u.id = r.author_id`

func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	var r model.Recipe
	err := row.Scan(
		&r.ID, &r.AuthorID, &r.Name, &r.Text, &r.CookingTime, &r.Image, &r.ShortCode,
		&r.CreatedAt, &r.UpdatedAt,
		&r.Author.Email, &r.Author.Username, &r.Author.FirstName, &r.Author.LastName, &r.Author.Avatar,
		&r.IsFavorited, &r.IsInShoppingCart, &r.Author.IsSubscribed,
	)
	if err != nil {
		return nil, err
	}
	r.Author.ID = r.AuthorID
	return &r, nil
}

func (p *recipePostgres) Create(ctx context.Context, recipe *model.Recipe, lines []model.IngredientLine, tagIDs []uuid.UUID) error {
	err := database.WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipes (id, author_id, name, text, cooking_time, image, short_code, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			recipe.ID, recipe.AuthorID, recipe.Name, recipe.Text, recipe.CookingTime,
			recipe.Image, recipe.ShortCode, recipe.CreatedAt, recipe.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := insertLines(ctx, tx, recipe.ID, lines); err != nil {
			return err
		}
		return insertTags(ctx, tx, recipe.ID, tagIDs)
	})
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (p *recipePostgres) Update(ctx context.Context, recipe *model.Recipe, lines []model.IngredientLine, tagIDs []uuid.UUID) error {
	err := database.WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE recipes
			SET name = $1, text = $2, cooking_time = $3, image = $4, updated_at = $5
			WHERE id = $6`,
			recipe.Name, recipe.Text, recipe.CookingTime, recipe.Image, recipe.UpdatedAt, recipe.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return model.ErrRecipeNotFound
		}

		// Full replace: the request carries the complete ingredient and tag sets.
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipe.ID); err != nil {
			return err
		}
		if err := insertLines(ctx, tx, recipe.ID, lines); err != nil {
			return err
		}
		return insertTags(ctx, tx, recipe.ID, tagIDs)
	})
	if err != nil {
		return translateWriteError(err)
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, lines []model.IngredientLine) error {
	for _, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount)
			VALUES ($1, $2, $3)`,
			recipeID, line.IngredientID, line.Amount,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func insertTags(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx, `INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`, recipeID, tagID)
		if err != nil {
			return err
		}
	}
	return nil
}

// translateWriteError maps constraint violations onto domain errors so the
// service layer never inspects SQLSTATE codes.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		switch pgErr.ConstraintName {
		case "recipes_author_id_name_key":
			return model.ErrRecipeNameTaken
		case "recipes_short_code_key":
			return model.ErrShortCodeCollision
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "recipe_ingredients_ingredient_id_fkey":
			return model.ErrUnknownIngredient
		case "recipe_tags_tag_id_fkey":
			return model.ErrUnknownTag
		}
	}
	return err
}

func (p *recipePostgres) GetByID(ctx context.Context, id, viewerID uuid.UUID) (*model.Recipe, error) {
	recipe, err := scanRecipe(p.db.QueryRow(ctx, recipeSelect+` WHERE r.id = $2`, viewerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if err := p.attachDetails(ctx, []*model.Recipe{recipe}); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (p *recipePostgres) GetByShortCode(ctx context.Context, code string) (uuid.UUID, error) {
	var id uuid.UUID
	err := p.db.QueryRow(ctx, `SELECT id FROM recipes WHERE short_code = $1`, code).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrRecipeNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve short code: %w", err)
	}
	return id, nil
}

func (p *recipePostgres) GetShortCode(ctx context.Context, id uuid.UUID) (string, error) {
	var code string
	err := p.db.QueryRow(ctx, `SELECT short_code FROM recipes WHERE id = $1`, id).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrRecipeNotFound
		}
		return "", fmt.Errorf("failed to get short code: %w", err)
	}
	return code, nil
}

func (p *recipePostgres) GetSummary(ctx context.Context, id uuid.UUID) (*model.Summary, error) {
	var s model.Summary
	err := p.db.QueryRow(ctx, `SELECT id, name, image, cooking_time FROM recipes WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe summary: %w", err)
	}
	return &s, nil
}

func (p *recipePostgres) List(ctx context.Context, filter Filter) ([]*model.Recipe, int, error) {
	conds, args := filterConditions(filter, 2)
	args = append([]interface{}{filter.ViewerID}, args...)

	query := recipeSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY r.created_at DESC, r.id DESC"
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*model.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := p.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if err := p.attachDetails(ctx, recipes); err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (p *recipePostgres) count(ctx context.Context, filter Filter) (int, error) {
	conds, args := filterConditions(filter, 1)
	query := `SELECT COUNT(*) FROM recipes r`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := p.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return total, nil
}

// filterConditions renders the filter as SQL fragments with placeholders
// numbered from start. Tag slugs OR-match inside a single IN subquery;
// the remaining options AND together.
func filterConditions(filter Filter, start int) ([]string, []interface{}) {
	var conds []string
	var args []interface{}
	idx := start

	if len(filter.TagSlugs) > 0 {
		conds = append(conds, fmt.Sprintf(`r.id IN (
			SELECT rt.recipe_id FROM recipe_tags rt
			JOIN tags t ON t.id = rt.tag_id
			WHERE t.slug = ANY($%d))`, idx))
		args = append(args, filter.TagSlugs)
		idx++
	}
	if filter.AuthorID != uuid.Nil {
		conds = append(conds, fmt.Sprintf("r.author_id = $%d", idx))
		args = append(args, filter.AuthorID)
		idx++
	}
	if filter.FavoritedBy != uuid.Nil {
		conds = append(conds, fmt.Sprintf("EXISTS(SELECT 1 FROM favorites f2 WHERE f2.recipe_id = r.id AND f2.user_id = $%d)", idx))
		args = append(args, filter.FavoritedBy)
		idx++
	}
	if filter.InCartOf != uuid.Nil {
		conds = append(conds, fmt.Sprintf("EXISTS(SELECT 1 FROM shopping_carts sc2 WHERE sc2.recipe_id = r.id AND sc2.user_id = $%d)", idx))
		args = append(args, filter.InCartOf)
		idx++
	}
	return conds, args
}

// attachDetails loads tags and ingredient lines for a page of recipes in
// two queries instead of 2N.
func (p *recipePostgres) attachDetails(ctx context.Context, recipes []*model.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(recipes))
	byID := make(map[uuid.UUID]*model.Recipe, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
		byID[r.ID] = r
	}

	rows, err := p.db.Query(ctx, `
		SELECT rt.recipe_id, t.id, t.name, t.slug, t.color
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID uuid.UUID
		var tag tagmodel.Tag
		if err := rows.Scan(&recipeID, &tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return err
		}
		byID[recipeID].Tags = append(byID[recipeID].Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = p.db.Query(ctx, `
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY i.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var recipeID uuid.UUID
		var line model.IngredientLine
		if err := rows.Scan(&recipeID, &line.IngredientID, &line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return err
		}
		byID[recipeID].Ingredients = append(byID[recipeID].Ingredients, line)
	}
	return rows.Err()
}

func (p *recipePostgres) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}

func (p *recipePostgres) SummariesByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]model.Summary, error) {
	query := `SELECT id, name, image, cooking_time FROM recipes WHERE author_id = $1 ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := p.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author recipes: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.Summary, 0)
	for rows.Next() {
		var s model.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Image, &s.CookingTime); err != nil {
			return nil, fmt.Errorf("failed to scan recipe summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (p *recipePostgres) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var total int
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM recipes WHERE author_id = $1`, authorID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count author recipes: %w", err)
	}
	return total, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blog-cms-api/internal/database"
	"github.com/blog-cms-api/internal/models"
	"github.com/mattn/go-sqlite3"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article and returns the assigned id. The slug and
// publication date must already be set by the caller; a slug held by an
// existing article fails with models.ErrDuplicateSlug and writes nothing.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) (int64, error) {
	query := `
		INSERT INTO articles (title, slug, publication_date, tags, content)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		article.Title, article.Slug, article.PublicationDate,
		nullable(article.Tags), nullable(article.Content),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, models.ErrDuplicateSlug
		}
		return 0, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted id: %w", err)
	}
	return id, nil
}

// GetByID retrieves an article by its primary key
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `
		SELECT id, title, slug, publication_date, tags, content
		FROM articles WHERE id = ?
	`

	var article models.Article
	var tags, content sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Slug, &article.PublicationDate,
		&tags, &content,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}

	article.Tags = tags.String
	article.Content = content.String

	return &article, nil
}

// ListAll retrieves every article, most recent publication date first.
// Ties keep insertion order.
func (r *articleRepo) ListAll(ctx context.Context) ([]*models.Article, error) {
	query := `
		SELECT id, title, slug, publication_date, tags, content
		FROM articles ORDER BY publication_date DESC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		var article models.Article
		var tags, content sql.NullString

		err := rows.Scan(
			&article.ID, &article.Title, &article.Slug, &article.PublicationDate,
			&tags, &content,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		article.Tags = tags.String
		article.Content = content.String
		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// Update overwrites title, slug, tags and content for the row matching the
// article's id. The publication_date column is deliberately left out: the
// original publication date survives every update. A missing id fails with
// models.ErrNotFound; a slug collision with a different article fails with
// models.ErrDuplicateSlug, leaving the row unchanged.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = ?, slug = ?, tags = ?, content = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		article.Title, article.Slug,
		nullable(article.Tags), nullable(article.Content),
		article.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update article %d: %w", article.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// nullable maps an empty string to NULL so optional columns stay NULL in the
// schema instead of storing empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

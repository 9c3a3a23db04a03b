package service

import (
	"context"
	"strings"
	"time"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/repository"
	"github.com/blog-cms-api/internal/slug"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
	}
}

// Create derives the slug from the title, stamps today's date as the
// publication date and inserts a new article.
func (s *articleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	article := &models.Article{
		Title:           input.Title,
		Slug:            slug.Make(input.Title),
		PublicationDate: time.Now().Format(models.DateLayout),
		Tags:            input.Tags,
		Content:         input.Content,
	}

	id, err := s.repo.Create(ctx, article)
	if err != nil {
		return nil, err
	}
	article.ID = id

	s.log.Info().
		Int64("id", article.ID).
		Str("slug", article.Slug).
		Msg("Article created")

	return article, nil
}

// Get retrieves a single article by id
func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all articles ordered by publication date, most recent first.
// A non-empty search term filters by case-insensitive substring match
// against title and tags.
func (s *articleService) List(ctx context.Context, search string) ([]*models.Article, error) {
	articles, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return articles, nil
	}

	term := strings.ToLower(search)
	filtered := []*models.Article{}
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Tags), term) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Update re-derives the slug from the new title and overwrites title, slug,
// tags and content for the matching article. The publication date is never
// touched. Returns the updated article as stored.
func (s *articleService) Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error) {
	article := &models.Article{
		ID:      id,
		Title:   input.Title,
		Slug:    slug.Make(input.Title),
		Tags:    input.Tags,
		Content: input.Content,
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("id", id).
		Str("slug", article.Slug).
		Msg("Article updated")

	return s.repo.GetByID(ctx, id)
}

// Slug exposes slug derivation for previewing while a title is being typed
func (s *articleService) Slug(title string) string {
	return slug.Make(title)
}

// Count returns the total number of stored articles
func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

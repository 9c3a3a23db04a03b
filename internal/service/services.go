package service

import (
	"context"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, search string) ([]*models.Article, error)
	Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error)
	Slug(title string) string
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos.Article, log),
	}
}

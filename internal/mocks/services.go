package mocks

import (
	"context"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/slug"
)

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	Repo *MockArticleRepository

	CreateError error
	ListError   error

	// LastSearch records the search term passed to List.
	LastSearch string
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Repo: NewMockArticleRepository(),
	}
}

func (m *MockArticleService) Create(ctx context.Context, input *models.ArticleInput) (*models.Article, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	article := &models.Article{
		Title:           input.Title,
		Slug:            slug.Make(input.Title),
		PublicationDate: "2024-01-01",
		Tags:            input.Tags,
		Content:         input.Content,
	}
	id, err := m.Repo.Create(ctx, article)
	if err != nil {
		return nil, err
	}
	article.ID = id
	return article, nil
}

func (m *MockArticleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	return m.Repo.GetByID(ctx, id)
}

func (m *MockArticleService) List(ctx context.Context, search string) ([]*models.Article, error) {
	m.LastSearch = search
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Repo.ListAll(ctx)
}

func (m *MockArticleService) Update(ctx context.Context, id int64, input *models.ArticleInput) (*models.Article, error) {
	article := &models.Article{
		ID:      id,
		Title:   input.Title,
		Slug:    slug.Make(input.Title),
		Tags:    input.Tags,
		Content: input.Content,
	}
	if err := m.Repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return m.Repo.GetByID(ctx, id)
}

func (m *MockArticleService) Slug(title string) string {
	return slug.Make(title)
}

func (m *MockArticleService) Count(ctx context.Context) (int, error) {
	return m.Repo.Count(ctx)
}

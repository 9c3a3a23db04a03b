package mocks

import (
	"context"
	"sort"

	"github.com/blog-cms-api/internal/models"
)

// MockArticleRepository is a mock implementation of repository.ArticleRepository
type MockArticleRepository struct {
	Articles      map[int64]*models.Article
	SlugToArticle map[string]*models.Article
	NextID        int64
	InsertError   error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[int64]*models.Article),
		SlugToArticle: make(map[string]*models.Article),
		NextID:        1,
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) (int64, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	if _, exists := m.SlugToArticle[article.Slug]; exists {
		return 0, models.ErrDuplicateSlug
	}

	stored := *article
	stored.ID = m.NextID
	m.NextID++

	m.Articles[stored.ID] = &stored
	m.SlugToArticle[stored.Slug] = &stored
	return stored.ID, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	article, exists := m.Articles[id]
	if !exists {
		return nil, models.ErrNotFound
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) ListAll(ctx context.Context) ([]*models.Article, error) {
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].PublicationDate != articles[j].PublicationDate {
			return articles[i].PublicationDate > articles[j].PublicationDate
		}
		return articles[i].ID < articles[j].ID
	})
	return articles, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	existing, exists := m.Articles[article.ID]
	if !exists {
		return models.ErrNotFound
	}
	if other, held := m.SlugToArticle[article.Slug]; held && other.ID != article.ID {
		return models.ErrDuplicateSlug
	}

	delete(m.SlugToArticle, existing.Slug)
	existing.Title = article.Title
	existing.Slug = article.Slug
	existing.Tags = article.Tags
	existing.Content = article.Content
	m.SlugToArticle[existing.Slug] = existing
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

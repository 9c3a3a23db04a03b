package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blog-cms-api/internal/api"
	"github.com/blog-cms-api/internal/mocks"
	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockArticleService) {
	gin.SetMode(gin.TestMode)

	mockArticle := mocks.NewMockArticleService()
	services := &service.Services{Article: mockArticle}

	log := zerolog.Nop()
	router := api.NewRouter(services, log)

	return router, mockArticle
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest("PUT", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "blog-cms-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, mockArticle := setupTestRouter()
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "One"})
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Two"})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Database struct {
			Articles int `json:"articles"`
		} `json:"database"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Database.Articles != 2 {
		t.Errorf("Expected 2 articles in metrics, got %d", response.Database.Articles)
	}
}

func TestCreateArticle(t *testing.T) {
	router, _ := setupTestRouter()

	w := postJSON(t, router, "/v1/articles", models.ArticleInput{
		Title:   "Hello World",
		Tags:    "go",
		Content: "body",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var article models.Article
	json.Unmarshal(w.Body.Bytes(), &article)

	if article.Slug != "hello-world" {
		t.Errorf("Expected slug 'hello-world', got %q", article.Slug)
	}
	if article.ID == 0 {
		t.Error("Expected an assigned id")
	}
}

func TestCreateArticle_EmptyTitle(t *testing.T) {
	router, mockArticle := setupTestRouter()

	for _, title := range []string{"", "   "} {
		w := postJSON(t, router, "/v1/articles", models.ArticleInput{Title: title})
		if w.Code != http.StatusBadRequest {
			t.Errorf("Title %q: expected status 400, got %d", title, w.Code)
		}
	}

	if count, _ := mockArticle.Count(context.Background()); count != 0 {
		t.Errorf("Expected no articles created, got %d", count)
	}
}

func TestCreateArticle_DuplicateSlug(t *testing.T) {
	router, _ := setupTestRouter()

	w := postJSON(t, router, "/v1/articles", models.ArticleInput{Title: "Hello World"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	w = postJSON(t, router, "/v1/articles", models.ArticleInput{Title: "Hello   World"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate slug, got %d", w.Code)
	}
}

func TestGetArticle(t *testing.T) {
	router, mockArticle := setupTestRouter()
	created, _ := mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Findable"})

	req := httptest.NewRequest("GET", "/v1/articles/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var article models.Article
	json.Unmarshal(w.Body.Bytes(), &article)
	if article.ID != created.ID {
		t.Errorf("Expected id %d, got %d", created.ID, article.ID)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestGetArticle_InvalidID(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestUpdateArticle(t *testing.T) {
	router, mockArticle := setupTestRouter()
	created, _ := mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Before"})

	w := putJSON(t, router, "/v1/articles/1", models.ArticleInput{Title: "After", Tags: "edited"})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var article models.Article
	json.Unmarshal(w.Body.Bytes(), &article)
	if article.Slug != "after" {
		t.Errorf("Expected slug re-derived from new title, got %q", article.Slug)
	}
	if article.PublicationDate != created.PublicationDate {
		t.Errorf("Publication date changed on update")
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := putJSON(t, router, "/v1/articles/9999", models.ArticleInput{Title: "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateArticle_DuplicateSlug(t *testing.T) {
	router, mockArticle := setupTestRouter()
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "First"})
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Second"})

	w := putJSON(t, router, "/v1/articles/2", models.ArticleInput{Title: "First"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}
}

func TestUpdateArticle_EmptyTitle(t *testing.T) {
	router, mockArticle := setupTestRouter()
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Keep Me"})

	w := putJSON(t, router, "/v1/articles/1", models.ArticleInput{Title: ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestListArticles(t *testing.T) {
	router, mockArticle := setupTestRouter()
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "One"})
	mockArticle.Create(context.Background(), &models.ArticleInput{Title: "Two"})

	req := httptest.NewRequest("GET", "/v1/articles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Articles []models.Article `json:"articles"`
		Total    int              `json:"total"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response.Total != 2 {
		t.Errorf("Expected total 2, got %d", response.Total)
	}
	if len(response.Articles) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(response.Articles))
	}
}

func TestListArticles_SearchPassthrough(t *testing.T) {
	router, mockArticle := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles?search=sqlite", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if mockArticle.LastSearch != "sqlite" {
		t.Errorf("Expected search term forwarded to service, got %q", mockArticle.LastSearch)
	}
}

func TestPreviewSlug(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/slug?title=My+Next+Post%21", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["slug"] != "my-next-post" {
		t.Errorf("Expected slug 'my-next-post', got %q", response["slug"])
	}
}

func TestPreviewSlug_MissingTitle(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/slug", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

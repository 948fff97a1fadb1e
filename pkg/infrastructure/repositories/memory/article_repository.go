package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// ArticleRepository provides in-memory article storage
type ArticleRepository struct {
	articles map[entities.ArticleID]*entities.Article
}

// NewArticleRepository creates a new in-memory article repository
func NewArticleRepository() *ArticleRepository {
	return &ArticleRepository{articles: make(map[entities.ArticleID]*entities.Article)}
}

// Verify interface compliance
var _ repositories.ArticleRepository = (*ArticleRepository)(nil)

// LoadArticles loads articles into the repository
func (r *ArticleRepository) LoadArticles(articles []*entities.Article) error {
	for _, a := range articles {
		if err := r.SaveArticle(a); err != nil {
			return err
		}
	}
	return nil
}

// SaveArticle inserts or replaces an article
func (r *ArticleRepository) SaveArticle(article *entities.Article) error {
	if article == nil || article.ID == "" {
		return fmt.Errorf("cannot save article without id")
	}
	r.articles[article.ID] = article
	return nil
}

// GetArticle returns the article with the given id
func (r *ArticleRepository) GetArticle(id entities.ArticleID) (*entities.Article, error) {
	article, exists := r.articles[id]
	if !exists {
		return nil, fmt.Errorf("article not found: %s", id)
	}
	return article, nil
}

// GetAllArticles returns all articles sorted by code
func (r *ArticleRepository) GetAllArticles() ([]*entities.Article, error) {
	articles := make([]*entities.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].Code < articles[j].Code })
	return articles, nil
}

// DeleteArticle removes an article
func (r *ArticleRepository) DeleteArticle(id entities.ArticleID) error {
	if _, exists := r.articles[id]; !exists {
		return fmt.Errorf("article not found: %s", id)
	}
	delete(r.articles, id)
	return nil
}

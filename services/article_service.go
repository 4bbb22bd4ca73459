package services

import (
	"errors"
	"log"
	"sort"

	"myblog-api/models"
	"myblog-api/render"
	"myblog-api/repositories"
	"myblog-api/utils"

	"gorm.io/gorm"
)

type ArticleService interface {
	ListPublished(category string) ([]models.Article, error)
	GetDetail(id uint) (*models.Article, error)
	RenderDetail(id uint) (*models.Article, string, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
	CreateArticle(input models.ArticleInput) (*models.Article, error)
	UpdateArticle(id uint, input models.ArticleInput) (*models.Article, error)
	TogglePublished(id uint) (*models.Article, error)
	DeleteArticle(id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// ListPublished returns published articles newest first, ties broken by id
// ascending. With a category it uses the indexed query; if the store
// signals a missing composite index the listing is served by fetching all
// published articles and filtering in memory. Both paths yield the same
// ordering for the same data, and the fallback is invisible to the caller.
func (s *articleService) ListPublished(category string) ([]models.Article, error) {
	if category == "" {
		return s.articleRepo.ListPublished()
	}

	articles, err := s.articleRepo.ListPublishedByCategory(category)
	if err == nil {
		return articles, nil
	}
	if !errors.Is(err, models.ErrIndexUnavailable) {
		return nil, err
	}

	log.Printf("indexed category query unavailable, falling back to in-memory filter: %v", err)

	all, err := s.articleRepo.ListPublished()
	if err != nil {
		return nil, err
	}

	// Articles reference categories by raw name, never by slug.
	filtered := make([]models.Article, 0, len(all))
	for _, a := range all {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].ID < filtered[j].ID
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

// GetDetail returns the article and bumps its view counter by one. The
// increment is fire-and-forget: a failure is logged and swallowed, never
// retried, and never prevents the article from being returned.
func (s *articleService) GetDetail(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := s.articleRepo.IncrementViews(id); err != nil {
		log.Printf("failed to increment views for article %d: %v", id, err)
	}

	return article, nil
}

// RenderDetail is GetDetail plus a sanitized HTML rendering of the body.
func (s *articleService) RenderDetail(id uint) (*models.Article, string, error) {
	article, err := s.GetDetail(id)
	if err != nil {
		return nil, "", err
	}

	html, err := render.Markdown(article.Content)
	if err != nil {
		return nil, "", err
	}
	return article, html, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

func (s *articleService) CreateArticle(input models.ArticleInput) (*models.Article, error) {
	if err := validateArticleInput(input); err != nil {
		return nil, err
	}

	article := articleFromInput(input)
	if article.Author == "" {
		article.Author = models.DefaultAuthor
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) UpdateArticle(id uint, input models.ArticleInput) (*models.Article, error) {
	if err := validateArticleInput(input); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	updated := articleFromInput(input)
	article.Title = updated.Title
	article.Excerpt = updated.Excerpt
	article.Content = updated.Content
	article.Category = updated.Category
	article.Tags = updated.Tags
	article.CoverImage = updated.CoverImage
	article.Published = updated.Published
	if updated.Author != "" {
		article.Author = updated.Author
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// TogglePublished flips the published flag. Deliberately not idempotent:
// calling twice toggles twice.
func (s *articleService) TogglePublished(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	article.Published = !article.Published
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) DeleteArticle(id uint) error {
	if _, err := s.articleRepo.GetByID(id); err != nil {
		return mapNotFound(err)
	}
	return s.articleRepo.Delete(id)
}

// validateArticleInput enforces the data-model invariants before any store
// contact. The first failing field wins.
func validateArticleInput(input models.ArticleInput) error {
	if res := utils.ValidateTitle(input.Title); !res.Valid {
		return &models.ValidationError{Field: "title", Reason: res.Error}
	}
	if res := utils.ValidateExcerpt(input.Excerpt); !res.Valid {
		return &models.ValidationError{Field: "excerpt", Reason: res.Error}
	}
	if res := utils.ValidateContent(input.Content); !res.Valid {
		return &models.ValidationError{Field: "content", Reason: res.Error}
	}
	if res := utils.ValidateTags(input.Tags); !res.Valid {
		return &models.ValidationError{Field: "tags", Reason: res.Error}
	}
	if res := utils.ValidateImageURL(input.CoverImage); !res.Valid {
		return &models.ValidationError{Field: "cover_image", Reason: res.Error}
	}
	return nil
}

// articleFromInput copies the editable fields, escaping everything that is
// rendered outside the markdown pipeline. The body is exempt: it goes
// through the markdown renderer, which does its own escaping.
func articleFromInput(input models.ArticleInput) *models.Article {
	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tags = append(tags, utils.SanitizeText(tag))
	}
	return &models.Article{
		Title:      utils.SanitizeText(input.Title),
		Excerpt:    utils.SanitizeText(input.Excerpt),
		Content:    input.Content,
		Category:   input.Category,
		Tags:       tags,
		CoverImage: input.CoverImage,
		Published:  input.Published,
		Author:     input.Author,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

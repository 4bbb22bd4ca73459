package handlers

import (
	"errors"
	"net/http"

	"myblog-api/helper"
	"myblog-api/models"
	"myblog-api/services"

	"github.com/gin-gonic/gin"
)

var HTTPHelper = helper.NewHTTPHelper()

type CategoryHandler struct {
	categoryService services.CategoryService
	articleService  services.ArticleService
}

func NewCategoryHandler(categoryService services.CategoryService, articleService services.ArticleService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		articleService:  articleService,
	}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			HTTPHelper.SendNotFoundError(c, "Category not found", HTTPHelper.EmptyJsonMap())
			return
		}
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetCategoryArticles is the category page query: the slug is resolved to
// the category name first, then articles are matched by raw name equality.
func (h *CategoryHandler) GetCategoryArticles(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			HTTPHelper.SendNotFoundError(c, "Category not found", HTTPHelper.EmptyJsonMap())
			return
		}
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	articles, err := h.articleService.ListPublished(category.Name)
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category, "articles": articles})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.CreateCategory(input)
	if err != nil {
		h.sendCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HTTPHelper.SendBadRequest(c, "Invalid category ID", HTTPHelper.EmptyJsonMap())
		return
	}

	var input models.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HTTPHelper.SendBadRequest(c, err.Error(), HTTPHelper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, input)
	if err != nil {
		h.sendCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetArticleCount backs the deletion warning: how many articles would be
// orphaned if this category were removed.
func (h *CategoryHandler) GetArticleCount(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HTTPHelper.SendBadRequest(c, "Invalid category ID", HTTPHelper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		h.sendCategoryError(c, err)
		return
	}

	count, err := h.categoryService.ArticleCount(category.Name)
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article_count": count})
}

// DeleteCategory requires confirm=true when articles still reference the
// category; without it the handler answers 409 with the count so the
// caller can warn before retrying.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		HTTPHelper.SendBadRequest(c, "Invalid category ID", HTTPHelper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		h.sendCategoryError(c, err)
		return
	}

	if c.Query("confirm") != "true" {
		count, err := h.categoryService.ArticleCount(category.Name)
		if err != nil {
			c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
			return
		}
		if count > 0 {
			HTTPHelper.SendConflict(c, "Category still has articles; confirm deletion",
				gin.H{"article_count": count})
			return
		}
	}

	updated, err := h.categoryService.DeleteCategory(id)
	if err != nil {
		var partial *models.PartialFailure
		if errors.As(err, &partial) {
			c.JSON(http.StatusMultiStatus, gin.H{
				"message":       "Category deleted, some article updates failed",
				"updated_count": partial.UpdatedCount,
				"failed_ids":    partial.FailedIDs,
			})
			return
		}
		h.sendCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Category deleted successfully",
		"updated_count": updated,
	})
}

func (h *CategoryHandler) sendCategoryError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		HTTPHelper.SendFieldError(c, validationErr)
	case errors.Is(err, models.ErrDuplicateName):
		HTTPHelper.SendConflict(c, err.Error(), HTTPHelper.EmptyJsonMap())
	case errors.Is(err, models.ErrNotFound):
		HTTPHelper.SendNotFoundError(c, "Category not found", HTTPHelper.EmptyJsonMap())
	default:
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
	}
}

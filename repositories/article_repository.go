package repositories

import (
	"myblog-api/models"

	"gorm.io/gorm"
)

// publicOrder is the listing order for articles: newest first, ties broken
// by store-assigned id ascending so the ordering is deterministic without
// pagination tokens.
const publicOrder = "created_at DESC, id ASC"

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetList(params models.ArticleListParams) ([]models.Article, int64, error)
	// ListPublishedByCategory is the primary indexed query over
	// (category, published, created_at). Implementations backed by stores
	// that require a pre-built composite index return
	// models.ErrIndexUnavailable when that index is missing; the
	// publication workflow then falls back to ListPublished plus
	// in-memory filtering.
	ListPublishedByCategory(category string) ([]models.Article, error)
	ListPublished() ([]models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	IncrementViews(id uint) error
	ClearCategory(id uint) error
	IDsByCategory(category string) ([]uint, error)
	CountByCategory(category string) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return storeErr(r.db.Create(article).Error)
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &article, nil
}

func (r *articleRepository) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{})

	switch params.Status {
	case "published":
		query = query.Where("published = ?", true)
	case "draft":
		query = query.Where("published = ?", false)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order(publicOrder).Offset(offset).Limit(params.Limit).Find(&articles).Error

	return articles, total, storeErr(err)
}

func (r *articleRepository) ListPublishedByCategory(category string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("category = ? AND published = ?", category, true).
		Order(publicOrder).
		Find(&articles).Error
	return articles, storeErr(err)
}

func (r *articleRepository) ListPublished() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("published = ?", true).
		Order(publicOrder).
		Find(&articles).Error
	return articles, storeErr(err)
}

// Update writes the editable columns only. Views is deliberately left
// out: the counter moves through IncrementViews, and a full-record save
// would write back whatever stale value the caller read, losing
// increments that landed in between.
func (r *articleRepository) Update(article *models.Article) error {
	return storeErr(r.db.Model(article).
		Select("title", "excerpt", "content", "category", "tags", "cover_image", "published", "author", "updated_at").
		Updates(article).Error)
}

// Delete is a hard delete: no tombstone, the row is gone.
func (r *articleRepository) Delete(id uint) error {
	return storeErr(r.db.Delete(&models.Article{}, id).Error)
}

func (r *articleRepository) IncrementViews(id uint) error {
	return storeErr(r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error)
}

func (r *articleRepository) ClearCategory(id uint) error {
	return storeErr(r.db.Model(&models.Article{}).
		Where("id = ?", id).
		Update("category", "").Error)
}

func (r *articleRepository) IDsByCategory(category string) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Article{}).
		Where("category = ?", category).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, storeErr(err)
}

func (r *articleRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("category = ?", category).
		Count(&count).Error
	return count, storeErr(err)
}

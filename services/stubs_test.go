package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"myblog-api/models"

	"gorm.io/gorm"
)

// In-memory repository stubs. They mimic the store contract the services
// rely on: store-assigned ids, record-not-found errors, and the
// index-missing signal on the composite category query.

type stubArticleRepo struct {
	mu             sync.Mutex
	articles       map[uint]models.Article
	nextID         uint
	indexMissing   bool
	incrementErr   error
	incrementCalls int
	clearCalls     int
	clearFail      map[uint]bool

	// afterGet runs once a read has returned, so tests can interleave a
	// concurrent write between a read-modify-write pair.
	afterGet func()
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{
		articles:  make(map[uint]models.Article),
		clearFail: make(map[uint]bool),
	}
}

func (r *stubArticleRepo) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	article.ID = r.nextID
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	article.UpdatedAt = time.Now()
	r.articles[article.ID] = *article
	return nil
}

func (r *stubArticleRepo) GetByID(id uint) (*models.Article, error) {
	r.mu.Lock()
	article, ok := r.articles[id]
	r.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if r.afterGet != nil {
		r.afterGet()
	}
	return &article, nil
}

func (r *stubArticleRepo) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Article
	for _, a := range r.articles {
		if params.Status == "published" && !a.Published {
			continue
		}
		if params.Status == "draft" && a.Published {
			continue
		}
		if params.Category != "" && a.Category != params.Category {
			continue
		}
		out = append(out, a)
	}
	sortArticles(out)
	return out, int64(len(out)), nil
}

func (r *stubArticleRepo) ListPublishedByCategory(category string) ([]models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexMissing {
		return nil, models.ErrIndexUnavailable
	}
	var out []models.Article
	for _, a := range r.articles {
		if a.Published && a.Category == category {
			out = append(out, a)
		}
	}
	sortArticles(out)
	return out, nil
}

func (r *stubArticleRepo) ListPublished() ([]models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Article
	for _, a := range r.articles {
		if a.Published {
			out = append(out, a)
		}
	}
	sortArticles(out)
	return out, nil
}

// Update mirrors the store contract: editable columns only. The view
// counter and creation time stay whatever the store currently holds.
func (r *stubArticleRepo) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.articles[article.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.UpdatedAt = time.Now()
	updated := *article
	updated.Views = stored.Views
	updated.CreatedAt = stored.CreatedAt
	r.articles[article.ID] = updated
	return nil
}

func (r *stubArticleRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.articles, id)
	return nil
}

func (r *stubArticleRepo) IncrementViews(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.incrementCalls++
	if r.incrementErr != nil {
		return r.incrementErr
	}
	article, ok := r.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.Views++
	r.articles[id] = article
	return nil
}

func (r *stubArticleRepo) ClearCategory(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearCalls++
	if r.clearFail[id] {
		return errors.New("update failed")
	}
	article, ok := r.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	article.Category = ""
	r.articles[id] = article
	return nil
}

func (r *stubArticleRepo) IDsByCategory(category string) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uint
	for id, a := range r.articles {
		if a.Category == category {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *stubArticleRepo) CountByCategory(category string) (int64, error) {
	ids, _ := r.IDsByCategory(category)
	return int64(len(ids)), nil
}

func sortArticles(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].ID < articles[j].ID
		}
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
}

type stubCategoryRepo struct {
	mu         sync.Mutex
	categories map[uint]models.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]models.Category)}
}

func (r *stubCategoryRepo) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	category.ID = r.nextID
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

func (r *stubCategoryRepo) GetByID(id uint) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &category, nil
}

func (r *stubCategoryRepo) GetByName(name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.categories {
		if category.Name == name {
			c := category
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) GetBySlug(slug string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, category := range r.categories {
		if category.Slug == slug {
			c := category
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) GetAll() ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, category := range r.categories {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

func (r *stubCategoryRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type stubNavigationRepo struct {
	mu      sync.Mutex
	entries map[uint]models.NavigationEntry
	nextID  uint
}

func newStubNavigationRepo() *stubNavigationRepo {
	return &stubNavigationRepo{entries: make(map[uint]models.NavigationEntry)}
}

func (r *stubNavigationRepo) Create(entry *models.NavigationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *stubNavigationRepo) GetByID(id uint) (*models.NavigationEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

func (r *stubNavigationRepo) GetAll() ([]models.NavigationEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.NavigationEntry
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *stubNavigationRepo) Update(entry *models.NavigationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	entry.UpdatedAt = time.Now()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *stubNavigationRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

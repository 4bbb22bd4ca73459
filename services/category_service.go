package services

import (
	"errors"
	"sync"

	"myblog-api/models"
	"myblog-api/repositories"
	"myblog-api/utils"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(input models.CategoryInput) (*models.Category, error)
	UpdateCategory(id uint, input models.CategoryInput) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	ArticleCount(name string) (int64, error)
	// DeleteCategory removes the category and clears the category field of
	// every referencing article. It returns the number of articles
	// updated; a *models.PartialFailure error means some article updates
	// failed while others went through.
	DeleteCategory(id uint) (int, error)
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	articleRepo  repositories.ArticleRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, articleRepo repositories.ArticleRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
	}
}

func (s *categoryService) CreateCategory(input models.CategoryInput) (*models.Category, error) {
	if err := s.validateInput(input, 0); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        categorySlug(input),
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, input models.CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := s.validateInput(input, id); err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Slug = categorySlug(input)
	category.Description = input.Description
	category.Icon = input.Icon
	category.Color = input.Color

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return category, nil
}

func (s *categoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return category, nil
}

// ArticleCount reports how many articles reference the category name, so
// the caller can warn before a deletion proceeds.
func (s *categoryService) ArticleCount(name string) (int64, error) {
	count, err := s.articleRepo.CountByCategory(name)
	return count, err
}

func (s *categoryService) DeleteCategory(id uint) (int, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return 0, mapNotFound(err)
	}

	ids, err := s.articleRepo.IDsByCategory(category.Name)
	if err != nil {
		return 0, err
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	// Referencing articles are never deleted, only orphaned to the empty
	// category. The updates run as an unordered batch; no update waits on
	// another, and partial completion is a normal outcome.
	var mu sync.Mutex
	var wg sync.WaitGroup
	var failed []uint

	for _, articleID := range ids {
		wg.Add(1)
		go func(articleID uint) {
			defer wg.Done()
			if err := s.articleRepo.ClearCategory(articleID); err != nil {
				mu.Lock()
				failed = append(failed, articleID)
				mu.Unlock()
			}
		}(articleID)
	}
	wg.Wait()

	updated := len(ids) - len(failed)
	if len(failed) > 0 {
		return updated, &models.PartialFailure{UpdatedCount: updated, FailedIDs: failed}
	}
	return updated, nil
}

// validateInput applies the field rules and the name-uniqueness pre-check,
// excluding the category being edited. The pre-check is read-then-write:
// two concurrent creations of the same name can both pass it.
func (s *categoryService) validateInput(input models.CategoryInput, excludeID uint) error {
	if res := utils.ValidateCategoryName(input.Name); !res.Valid {
		return &models.ValidationError{Field: "name", Reason: res.Error}
	}
	if res := utils.ValidateDescription(input.Description); !res.Valid {
		return &models.ValidationError{Field: "description", Reason: res.Error}
	}

	existing, err := s.categoryRepo.GetByName(input.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return models.ErrDuplicateName
	}
	return nil
}

// categorySlug honors an explicitly supplied slug verbatim and derives one
// from the name otherwise.
func categorySlug(input models.CategoryInput) string {
	if input.Slug != "" {
		return input.Slug
	}
	return utils.GenerateSlug(input.Name)
}

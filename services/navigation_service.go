package services

import (
	"myblog-api/models"
	"myblog-api/repositories"
	"myblog-api/utils"
)

type NavigationService interface {
	// ResolveMenu returns every entry ordered ascending by order,
	// disabled ones included so an admin preview can show them. An empty
	// collection yields an empty sequence, not an error: the caller
	// substitutes its default menu.
	ResolveMenu() ([]models.NavigationEntry, error)
	CreateEntry(input models.NavigationInput) (*models.NavigationEntry, error)
	UpdateEntry(id uint, input models.NavigationInput) (*models.NavigationEntry, error)
	DeleteEntry(id uint) error
}

type navigationService struct {
	navigationRepo repositories.NavigationRepository
}

func NewNavigationService(navigationRepo repositories.NavigationRepository) NavigationService {
	return &navigationService{navigationRepo: navigationRepo}
}

func (s *navigationService) ResolveMenu() ([]models.NavigationEntry, error) {
	entries, err := s.navigationRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.NavigationEntry{}
	}
	return entries, nil
}

func (s *navigationService) CreateEntry(input models.NavigationInput) (*models.NavigationEntry, error) {
	if err := validateNavigationInput(input); err != nil {
		return nil, err
	}

	entry := entryFromInput(input)
	if err := s.navigationRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *navigationService) UpdateEntry(id uint, input models.NavigationInput) (*models.NavigationEntry, error) {
	entry, err := s.navigationRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := validateNavigationInput(input); err != nil {
		return nil, err
	}

	entry.Title = utils.SanitizeText(input.Title)
	entry.Path = input.Path
	entry.Type = input.Type
	entry.Order = input.Order
	entry.Enabled = input.Enabled

	if err := s.navigationRepo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *navigationService) DeleteEntry(id uint) error {
	if _, err := s.navigationRepo.GetByID(id); err != nil {
		return mapNotFound(err)
	}
	return s.navigationRepo.Delete(id)
}

func validateNavigationInput(input models.NavigationInput) error {
	if res := utils.ValidateTitle(input.Title); !res.Valid {
		return &models.ValidationError{Field: "title", Reason: res.Error}
	}
	switch input.Type {
	case models.NavigationInternal, models.NavigationExternal, models.NavigationCategory:
	default:
		return &models.ValidationError{Field: "type", Reason: "unknown navigation type"}
	}
	if res := utils.ValidateNavigationPath(input.Path, input.Type); !res.Valid {
		return &models.ValidationError{Field: "path", Reason: res.Error}
	}
	return nil
}

func entryFromInput(input models.NavigationInput) *models.NavigationEntry {
	return &models.NavigationEntry{
		Title:   utils.SanitizeText(input.Title),
		Path:    input.Path,
		Type:    input.Type,
		Order:   input.Order,
		Enabled: input.Enabled,
	}
}

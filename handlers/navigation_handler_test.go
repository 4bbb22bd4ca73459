package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"myblog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedNavigationService struct {
	entries []models.NavigationEntry
}

func (s *fixedNavigationService) ResolveMenu() ([]models.NavigationEntry, error) {
	return s.entries, nil
}

func (s *fixedNavigationService) CreateEntry(input models.NavigationInput) (*models.NavigationEntry, error) {
	return nil, models.ErrNotFound
}

func (s *fixedNavigationService) UpdateEntry(id uint, input models.NavigationInput) (*models.NavigationEntry, error) {
	return nil, models.ErrNotFound
}

func (s *fixedNavigationService) DeleteEntry(id uint) error {
	return models.ErrNotFound
}

type navigationResponse struct {
	Navigation []models.NavigationEntry `json:"navigation"`
	Default    bool                     `json:"default"`
}

func getNavigation(t *testing.T, svc *fixedNavigationService) navigationResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewNavigationHandler(svc)
	router.GET("/navigation", handler.GetPublicNavigation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/navigation", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp navigationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPublicNavigationFallsBackToDefaultMenu(t *testing.T) {
	resp := getNavigation(t, &fixedNavigationService{entries: []models.NavigationEntry{}})

	assert.True(t, resp.Default)
	require.Len(t, resp.Navigation, 2)
	assert.Equal(t, "Home", resp.Navigation[0].Title)
	assert.Equal(t, "/", resp.Navigation[0].Path)
	assert.Equal(t, "Categories", resp.Navigation[1].Title)
}

func TestPublicNavigationFiltersDisabled(t *testing.T) {
	resp := getNavigation(t, &fixedNavigationService{entries: []models.NavigationEntry{
		{ID: 1, Title: "Visible", Path: "/v", Type: models.NavigationInternal, Order: 0, Enabled: true},
		{ID: 2, Title: "Hidden", Path: "/h", Type: models.NavigationInternal, Order: 1, Enabled: false},
	}})

	assert.False(t, resp.Default)
	require.Len(t, resp.Navigation, 1)
	assert.Equal(t, "Visible", resp.Navigation[0].Title)
}

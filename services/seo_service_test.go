package services

import (
	"testing"
	"time"

	"myblog-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSitemap(t *testing.T) {
	articleRepo := newStubArticleRepo()
	categoryRepo := newStubCategoryRepo()
	navigationRepo := newStubNavigationRepo()
	svc := NewSEOService(articleRepo, categoryRepo, navigationRepo, "https://blog.example.com")

	now := time.Now()
	seedArticle(t, articleRepo, "public", "Go", true, now)
	seedArticle(t, articleRepo, "draft", "Go", false, now)

	require.NoError(t, categoryRepo.Create(&models.Category{Name: "Go", Slug: "go"}))

	require.NoError(t, navigationRepo.Create(&models.NavigationEntry{
		Title: "About", Path: "/about", Type: models.NavigationInternal, Enabled: true,
	}))
	require.NoError(t, navigationRepo.Create(&models.NavigationEntry{
		Title: "Hidden", Path: "/hidden", Type: models.NavigationInternal, Enabled: false,
	}))
	require.NoError(t, navigationRepo.Create(&models.NavigationEntry{
		Title: "Ext", Path: "https://elsewhere.example.com", Type: models.NavigationExternal, Enabled: true,
	}))
	require.NoError(t, navigationRepo.Create(&models.NavigationEntry{
		Title: "Root", Path: "/", Type: models.NavigationInternal, Enabled: true,
	}))

	urlset, err := svc.GenerateSitemap()
	require.NoError(t, err)

	locations := make([]string, 0, len(urlset.URLs))
	for _, u := range urlset.URLs {
		locations = append(locations, u.Location)
	}

	assert.Equal(t, "https://blog.example.com/", locations[0])
	assert.Contains(t, locations, "https://blog.example.com/article/1")
	assert.Contains(t, locations, "https://blog.example.com/category/go")
	assert.Contains(t, locations, "https://blog.example.com/about")

	assert.NotContains(t, locations, "https://blog.example.com/article/2", "drafts are excluded")
	assert.NotContains(t, locations, "https://blog.example.com/hidden", "disabled entries are excluded")
	assert.NotContains(t, locations, "https://elsewhere.example.com", "external entries are excluded")
	assert.Len(t, locations, 4)
}

func TestGenerateSitemapEmptyStore(t *testing.T) {
	svc := NewSEOService(newStubArticleRepo(), newStubCategoryRepo(), newStubNavigationRepo(), "https://blog.example.com")

	urlset, err := svc.GenerateSitemap()
	require.NoError(t, err)
	require.Len(t, urlset.URLs, 1)
	assert.Equal(t, "https://blog.example.com/", urlset.URLs[0].Location)
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", urlset.Xmlns)
}

func TestGenerateRobots(t *testing.T) {
	svc := NewSEOService(newStubArticleRepo(), newStubCategoryRepo(), newStubNavigationRepo(), "https://blog.example.com")

	robots := svc.GenerateRobots()
	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Allow: /")
	assert.Contains(t, robots, "Crawl-delay: 1")
	assert.Contains(t, robots, "Sitemap: https://blog.example.com/sitemap.xml")
	assert.Contains(t, robots, "Disallow: /admin")
	assert.Contains(t, robots, "Disallow: /login")
	assert.Contains(t, robots, "Disallow: /create")
	assert.Contains(t, robots, "Disallow: /edit")
}

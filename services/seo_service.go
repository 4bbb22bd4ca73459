package services

import (
	"encoding/xml"
	"fmt"
	"time"

	"myblog-api/models"
	"myblog-api/repositories"
)

// URLSet is the sitemap root element.
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Location     string  `xml:"loc"`
	LastModified string  `xml:"lastmod,omitempty"`
	ChangeFreq   string  `xml:"changefreq,omitempty"`
	Priority     float32 `xml:"priority,omitempty"`
}

const sitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SEOService interface {
	// GenerateSitemap lists the homepage, every published article, every
	// category by slug and every enabled internal navigation path. Pure
	// function of current store contents; nothing is cached.
	GenerateSitemap() (*URLSet, error)
	GenerateRobots() string
}

type seoService struct {
	articleRepo    repositories.ArticleRepository
	categoryRepo   repositories.CategoryRepository
	navigationRepo repositories.NavigationRepository
	baseURL        string
}

func NewSEOService(
	articleRepo repositories.ArticleRepository,
	categoryRepo repositories.CategoryRepository,
	navigationRepo repositories.NavigationRepository,
	baseURL string,
) SEOService {
	return &seoService{
		articleRepo:    articleRepo,
		categoryRepo:   categoryRepo,
		navigationRepo: navigationRepo,
		baseURL:        baseURL,
	}
}

func (s *seoService) GenerateSitemap() (*URLSet, error) {
	today := time.Now().Format("2006-01-02")

	urls := []SitemapURL{{
		Location:     s.baseURL + "/",
		LastModified: today,
		ChangeFreq:   "daily",
		Priority:     1.0,
	}}

	articles, err := s.articleRepo.ListPublished()
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		urls = append(urls, SitemapURL{
			Location:     fmt.Sprintf("%s/article/%d", s.baseURL, article.ID),
			LastModified: article.UpdatedAt.Format("2006-01-02"),
			ChangeFreq:   "monthly",
			Priority:     0.8,
		})
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		urls = append(urls, SitemapURL{
			Location:     s.baseURL + "/category/" + category.Slug,
			LastModified: today,
			ChangeFreq:   "weekly",
			Priority:     0.6,
		})
	}

	entries, err := s.navigationRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Type != models.NavigationInternal || !entry.Enabled || entry.Path == "/" {
			continue
		}
		urls = append(urls, SitemapURL{
			Location:     s.baseURL + entry.Path,
			LastModified: today,
			ChangeFreq:   "monthly",
			Priority:     0.7,
		})
	}

	return &URLSet{Xmlns: sitemapXmlns, URLs: urls}, nil
}

func (s *seoService) GenerateRobots() string {
	return fmt.Sprintf(`User-agent: *
Allow: /

Sitemap: %s/sitemap.xml

Crawl-delay: 1

Disallow: /admin
Disallow: /login
Disallow: /create
Disallow: /edit
`, s.baseURL)
}

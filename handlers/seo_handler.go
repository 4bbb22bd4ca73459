package handlers

import (
	"encoding/xml"
	"net/http"

	"myblog-api/services"

	"github.com/gin-gonic/gin"
)

type SEOHandler struct {
	seoService services.SEOService
}

func NewSEOHandler(seoService services.SEOService) *SEOHandler {
	return &SEOHandler{seoService: seoService}
}

func (h *SEOHandler) Sitemap(c *gin.Context) {
	urlset, err := h.seoService.GenerateSitemap()
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	body, err := xml.MarshalIndent(urlset, "", "  ")
	if err != nil {
		c.JSON(HTTPHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.seoService.GenerateRobots())
}

// Package pages serves the static marketing pages, their legacy .html
// aliases, and the health endpoint.
package pages

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motorhub/pkg/utils"
)

type Handler struct {
	Site utils.SiteProfile
}

func NewHandler(site utils.SiteProfile) *Handler {
	return &Handler{Site: site}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/services", h.static("services.html"))
	r.GET("/about", h.static("about.html"))
	r.GET("/about.html", h.static("about.html"))
	r.GET("/finance", h.static("finance.html"))
	r.GET("/finance.html", h.static("finance.html"))
	r.GET("/trade-in", h.static("trade-in.html"))
	r.GET("/gallery", h.static("gallery.html"))
	r.GET("/privacy-policy", h.static("privacy-policy.html"))
	r.GET("/health", h.health)
}

func (h *Handler) static(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, gin.H{
			"site": h.Site,
			"year": time.Now().Year(),
		})
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

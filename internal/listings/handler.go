package listings

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"motorhub/pkg/models"
	"motorhub/pkg/utils"
)

type Handler struct {
	Svc  *Service
	Site utils.SiteProfile
}

func NewHandler(svc *Service, site utils.SiteProfile) *Handler {
	return &Handler{Svc: svc, Site: site}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/inventory", h.inventory)
	r.GET("/listing/:id", h.detail)
}

func (h *Handler) home(c *gin.Context) {
	listings := h.Svc.GetListings(c.Request.Context())

	byPrice := make([]models.Listing, len(listings))
	copy(byPrice, listings)
	SortBy(byPrice, "price_high")
	featured := byPrice[:min(3, len(byPrice))]

	c.HTML(http.StatusOK, "home.html", gin.H{
		"featured_listings": featured,
		"site":              h.Site,
		"year":              time.Now().Year(),
	})
}

func (h *Handler) inventory(c *gin.Context) {
	sortMode := c.DefaultQuery("sort", "newest")
	armoured := c.DefaultQuery("armoured", "all")

	listings := FilterArmoured(h.Svc.GetListings(c.Request.Context()), armoured)
	SortBy(listings, sortMode)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"listings": listings,
		"sort":     sortMode,
		"armoured": armoured,
		"site":     h.Site,
		"year":     time.Now().Year(),
	})
}

func (h *Handler) detail(c *gin.Context) {
	id := c.Param("id")
	for _, l := range h.Svc.GetListings(c.Request.Context()) {
		if l.ID == id {
			c.HTML(http.StatusOK, "listing.html", gin.H{
				"car":  l,
				"site": h.Site,
				"year": time.Now().Year(),
			})
			return
		}
	}
	c.String(http.StatusNotFound, "Vehicle not found")
}

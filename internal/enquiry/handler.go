package enquiry

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motorhub/pkg/models"
	"motorhub/pkg/utils"
)

type Handler struct {
	Repo *Repo
	Site utils.SiteProfile
}

func NewHandler(repo *Repo, site utils.SiteProfile) *Handler {
	return &Handler{Repo: repo, Site: site}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/contact", h.form)
	r.GET("/contact.html", h.form)
	r.POST("/contact", h.submit)
}

func (h *Handler) form(c *gin.Context) {
	h.render(c, gin.H{})
}

func (h *Handler) submit(c *gin.Context) {
	e := &models.Enquiry{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(c.PostForm("name")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Phone:     strings.TrimSpace(c.PostForm("phone")),
		Message:   strings.TrimSpace(c.PostForm("message")),
		ListingID: strings.TrimSpace(c.PostForm("listing_id")),
		CreatedAt: time.Now(),
	}

	if e.Name == "" || e.Message == "" {
		h.render(c, gin.H{"error": "Please fill in your name and a message."})
		return
	}

	if err := h.Repo.Insert(c.Request.Context(), e); err != nil {
		log.Printf("[enquiry] insert failed: %v", err)
		h.render(c, gin.H{"error": "Something went wrong, please try again."})
		return
	}

	log.Printf("[enquiry] received enquiry %s from %q", e.ID, e.Name)
	h.render(c, gin.H{"sent": true})
}

func (h *Handler) render(c *gin.Context, data gin.H) {
	data["site"] = h.Site
	data["year"] = time.Now().Year()
	c.HTML(http.StatusOK, "contact.html", data)
}

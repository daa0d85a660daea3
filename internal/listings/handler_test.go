package listings

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"motorhub/pkg/utils"
)

const armouredFeed = `[
	{"id": "1", "created": "2024-03-01T00:00:00Z", "price": "900,00", "description": "B6 armoured"},
	{"id": "2", "created": "2024-02-01T00:00:00Z", "price": "500,00", "description": "Standard"},
	{"id": "3", "created": "2024-01-01T00:00:00Z", "price": "100,00", "description": "Runflat tyres fitted"}
]`

// stub templates: pages render just the listing IDs so assertions stay simple
var stubTemplates = template.Must(template.New("stubs").Parse(`
{{define "home.html"}}{{range .featured_listings}}{{.ID}};{{end}}{{end}}
{{define "index.html"}}{{range .listings}}{{.ID}};{{end}}{{end}}
{{define "listing.html"}}{{.car.ID}}{{end}}
`))

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(armouredFeed))
	})

	router := gin.New()
	router.SetHTMLTemplate(stubTemplates)
	NewHandler(svc, utils.SiteProfile{Name: "Test Motors"}).RegisterRoutes(router)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHomeFeaturedByPrice(t *testing.T) {
	w := get(t, newTestRouter(t), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); strings.TrimSpace(got) != "1;2;3;" {
		t.Errorf("featured order = %q; want price-descending 1;2;3;", got)
	}
}

func TestInventoryDefaultNewestFirst(t *testing.T) {
	w := get(t, newTestRouter(t), "/inventory")
	if got := strings.TrimSpace(w.Body.String()); got != "1;2;3;" {
		t.Errorf("inventory order = %q; want newest-first 1;2;3;", got)
	}
}

func TestInventoryArmouredFilter(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/inventory?armoured=yes")
	if got := strings.TrimSpace(w.Body.String()); got != "1;3;" {
		t.Errorf("armoured=yes = %q; want 1;3;", got)
	}

	w = get(t, router, "/inventory?armoured=no")
	if got := strings.TrimSpace(w.Body.String()); got != "2;" {
		t.Errorf("armoured=no = %q; want 2;", got)
	}
}

func TestInventoryPriceSort(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/inventory?sort=price_low")
	if got := strings.TrimSpace(w.Body.String()); got != "3;2;1;" {
		t.Errorf("price_low = %q; want 3;2;1;", got)
	}

	w = get(t, router, "/inventory?sort=price_high")
	if got := strings.TrimSpace(w.Body.String()); got != "1;2;3;" {
		t.Errorf("price_high = %q; want 1;2;3;", got)
	}
}

func TestListingDetail(t *testing.T) {
	router := newTestRouter(t)

	w := get(t, router, "/listing/2")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "2" {
		t.Errorf("detail = (%d, %q); want (200, 2)", w.Code, w.Body.String())
	}
}

func TestListingDetailNotFound(t *testing.T) {
	w := get(t, newTestRouter(t), "/listing/999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	if w.Body.String() != "Vehicle not found" {
		t.Errorf("body = %q; want plain-text Vehicle not found", w.Body.String())
	}
}

package registry

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
)

type Handler struct {
	registry Searcher
}

func NewHandler(registry Searcher) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) search(find func(query string) []Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		if strings.TrimSpace(query) == "" {
			httpErr := apperror.ToHTTP(apperror.ErrSearchQueryRequired)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			return
		}
		hits := find(query)
		response.Success(c, http.StatusOK, hits, response.NewListMeta(len(hits), query))
	}
}

func (h *Handler) SearchCompanies() gin.HandlerFunc {
	return h.search(func(q string) []Entity { return h.registry.Search(KindCompany, q) })
}

func (h *Handler) SearchBrokers() gin.HandlerFunc {
	return h.search(func(q string) []Entity { return h.registry.Search(KindBroker, q) })
}

// SearchEntities matches both datasets, companies first.
func (h *Handler) SearchEntities() gin.HandlerFunc {
	return h.search(h.registry.SearchAll)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"rootroutes-service/domain"
	"rootroutes-service/query"
	"rootroutes-service/services"
)

type CultureHandler struct {
	cultureService services.CultureService
	responder      *Responder
}

func NewCultureHandler(cultureService services.CultureService, responder *Responder) CultureHandler {
	return CultureHandler{cultureService, responder}
}

func (h *CultureHandler) ListCultureSites(c *gin.Context) {
	filter := query.CultureFilter{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
	}

	page, err := h.cultureService.ListCultureSites(c.Request.Context(), filter)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, page)
}

func (h *CultureHandler) GetCultureSite(c *gin.Context) {
	site, err := h.cultureService.GetCultureSiteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusOK, site)
}

// CreateCultureSite is public; a valid token only records who submitted it.
func (h *CultureHandler) CreateCultureSite(c *gin.Context) {
	var input domain.CreateCultureSiteInput
	if !h.responder.bindJSON(c, &input) {
		return
	}

	var owner *primitive.ObjectID
	if identity, ok := CurrentIdentity(c); ok {
		owner = &identity.ID
	}

	site, err := h.cultureService.CreateCultureSite(c.Request.Context(), &input, owner)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusCreated, site)
}

func (h *CultureHandler) SeedCultureSites(c *gin.Context) {
	count, err := h.cultureService.ReseedCultureSites(c.Request.Context())
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	h.responder.Success(c, http.StatusCreated, gin.H{"count": count})
}

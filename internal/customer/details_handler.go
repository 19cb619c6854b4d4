package customer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	customererrors "github.com/mmnete/bimasoft-backend/internal/customer/errors"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/response"
)

func (h *Handler) CreateIndividual(c *gin.Context) {
	var req CreateIndividualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.individuals.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllIndividuals(c *gin.Context) {
	resp, err := h.individuals.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetIndividual(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	resp, err := h.individuals.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetIndividualByNationalID(c *gin.Context) {
	resp, err := h.individuals.GetByNationalID(c.Request.Context(), c.Param("nationalId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateIndividual(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	resp, err := h.individuals.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteIndividual(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	if err := h.individuals.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) CreateCorporate(c *gin.Context) {
	var req CreateCorporateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	resp, err := h.corporates.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllCorporates(c *gin.Context) {
	resp, err := h.corporates.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, response.NewListMeta(len(resp), ""))
}

func (h *Handler) GetCorporate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	resp, err := h.corporates.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetCorporateByBrela(c *gin.Context) {
	resp, err := h.corporates.GetByBrela(c.Request.Context(), c.Param("brela"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateCorporate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.writeServiceError(c, apperror.ErrInvalidInput)
		return
	}
	resp, err := h.corporates.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteCorporate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.writeServiceError(c, customererrors.ErrInvalidCustomerID)
		return
	}
	if err := h.corporates.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.NoContent(c)
}

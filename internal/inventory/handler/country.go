package handler

import (
	"net/http"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/store"

	"github.com/gin-gonic/gin"
)

type CreateCountryRequest struct {
	Code        string `json:"code" binding:"required,min=2,max=3"`
	Name        string `json:"name" binding:"required,max=100"`
	DialingCode string `json:"dialing_code" binding:"required,max=8"`
}

type UpdateCountryRequest struct {
	Code        *string `json:"code,omitempty" binding:"omitempty,min=2,max=3"`
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	DialingCode *string `json:"dialing_code,omitempty" binding:"omitempty,min=1,max=8"`
}

func (h *Handler) HandleCreateCountry(c *gin.Context) {
	var req CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	country, err := h.processor.CreateCountry(c.Request.Context(), store.CreateCountryParams{
		Code:        req.Code,
		Name:        req.Name,
		DialingCode: req.DialingCode,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, country)
}

func (h *Handler) HandleListCountries(c *gin.Context) {
	countries, err := h.processor.ListCountries(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (h *Handler) HandleGetCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	country, err := h.processor.GetCountry(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, country)
}

func (h *Handler) HandleUpdateCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	country, err := h.processor.UpdateCountry(c.Request.Context(), id, store.UpdateCountryParams{
		Code:        req.Code,
		Name:        req.Name,
		DialingCode: req.DialingCode,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, country)
}

func (h *Handler) HandleDeleteCountry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	country, err := h.processor.DeleteCountry(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, country)
}

// HandleListCountryOperators lists the operators of one country.
func (h *Handler) HandleListCountryOperators(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	operators, err := h.processor.ListOperatorsByCountry(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operators)
}

package handler

import (
	"net/http"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/store"

	"github.com/gin-gonic/gin"
)

type CreateOperatorRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Status    string `json:"status" binding:"required,max=50"`
	CountryID int64  `json:"country_id" binding:"required,gt=0"`
}

type UpdateOperatorRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email,max=100"`
	Status    *string `json:"status,omitempty" binding:"omitempty,min=1,max=50"`
	CountryID *int64  `json:"country_id,omitempty" binding:"omitempty,gt=0"`
}

func (h *Handler) HandleCreateOperator(c *gin.Context) {
	var req CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	operator, err := h.processor.CreateOperator(c.Request.Context(), store.CreateOperatorParams{
		Name:      req.Name,
		Email:     req.Email,
		Status:    req.Status,
		CountryID: req.CountryID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, operator)
}

func (h *Handler) HandleListOperators(c *gin.Context) {
	operators, err := h.processor.ListOperators(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operators)
}

func (h *Handler) HandleGetOperator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	operator, err := h.processor.GetOperator(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operator)
}

func (h *Handler) HandleUpdateOperator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	operator, err := h.processor.UpdateOperator(c.Request.Context(), id, store.UpdateOperatorParams{
		Name:      req.Name,
		Email:     req.Email,
		Status:    req.Status,
		CountryID: req.CountryID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operator)
}

func (h *Handler) HandleDeleteOperator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	operator, err := h.processor.DeleteOperator(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, operator)
}

// HandleListOperatorAdvertisers lists the advertisers of one operator.
func (h *Handler) HandleListOperatorAdvertisers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	advertisers, err := h.processor.ListAdvertisersByOperator(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advertisers)
}

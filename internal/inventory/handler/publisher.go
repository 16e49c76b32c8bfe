package handler

import (
	"net/http"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/store"

	"github.com/gin-gonic/gin"
)

type CreatePublisherRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	CompanyName string `json:"company_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	BlockRule   string `json:"block_rule" binding:"max=100"`
	Status      string `json:"status" binding:"required,max=100"`
	Cap         int    `json:"cap" binding:"gte=0"`
}

type UpdatePublisherRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	CompanyName *string `json:"company_name,omitempty" binding:"omitempty,min=1,max=100"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email,max=100"`
	BlockRule   *string `json:"block_rule,omitempty" binding:"omitempty,max=100"`
	Status      *string `json:"status,omitempty" binding:"omitempty,min=1,max=100"`
	Cap         *int    `json:"cap,omitempty" binding:"omitempty,gte=0"`
}

func (h *Handler) HandleCreatePublisher(c *gin.Context) {
	var req CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	publisher, err := h.processor.CreatePublisher(c.Request.Context(), store.CreatePublisherParams{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		BlockRule:   req.BlockRule,
		Status:      req.Status,
		Cap:         req.Cap,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publisher)
}

func (h *Handler) HandleListPublishers(c *gin.Context) {
	publishers, err := h.processor.ListPublishers(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, publishers)
}

func (h *Handler) HandleGetPublisher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	publisher, err := h.processor.GetPublisher(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, publisher)
}

func (h *Handler) HandleUpdatePublisher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	publisher, err := h.processor.UpdatePublisher(c.Request.Context(), id, store.UpdatePublisherParams{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		BlockRule:   req.BlockRule,
		Status:      req.Status,
		Cap:         req.Cap,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, publisher)
}

// HandleDeletePublisher deletes the publisher and reports how many of its
// campaigns were removed with it.
func (h *Handler) HandleDeletePublisher(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deletion, err := h.processor.DeletePublisher(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publisher":         deletion.Publisher,
		"removed_campaigns": deletion.RemovedCampaigns,
	})
}

// HandleGetPublisherState returns the cached routing state of a publisher.
func (h *Handler) HandleGetPublisherState(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	state, err := h.processor.GetPublisherState(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

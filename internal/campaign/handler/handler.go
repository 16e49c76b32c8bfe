package handler

import (
	"net/http"
	"strconv"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/campaign/processor"
	"inapp-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name                    string  `json:"name" binding:"required,max=100"`
	PublisherID             int64   `json:"publisher_id" binding:"required,gt=0"`
	CountryID               int64   `json:"country_id" binding:"required,gt=0"`
	OperatorID              int64   `json:"operator_id" binding:"required,gt=0"`
	AdvertiserID            int64   `json:"advertiser_id" binding:"required,gt=0"`
	RedirectionAdvertiserID *int64  `json:"redirection_advertiser_id,omitempty" binding:"omitempty,gt=0"`
	PublisherPrice          float64 `json:"publisher_price" binding:"gte=0"`
	AdvertiserPrice         float64 `json:"advertiser_price" binding:"gte=0"`
	FallbackEnabled         bool    `json:"fallback_enabled"`
	IsLive                  *bool   `json:"is_live,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign
type UpdateCampaignRequest struct {
	Name                    *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	PublisherID             *int64   `json:"publisher_id,omitempty" binding:"omitempty,gt=0"`
	CountryID               *int64   `json:"country_id,omitempty" binding:"omitempty,gt=0"`
	OperatorID              *int64   `json:"operator_id,omitempty" binding:"omitempty,gt=0"`
	AdvertiserID            *int64   `json:"advertiser_id,omitempty" binding:"omitempty,gt=0"`
	RedirectionAdvertiserID *int64   `json:"redirection_advertiser_id,omitempty" binding:"omitempty,gt=0"`
	PublisherPrice          *float64 `json:"publisher_price,omitempty" binding:"omitempty,gte=0"`
	AdvertiserPrice         *float64 `json:"advertiser_price,omitempty" binding:"omitempty,gte=0"`
	FallbackEnabled         *bool    `json:"fallback_enabled,omitempty"`
	IsLive                  *bool    `json:"is_live,omitempty"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(c.Request.Context(), processor.CreateCampaignParams{
		Name:                    req.Name,
		PublisherID:             req.PublisherID,
		CountryID:               req.CountryID,
		OperatorID:              req.OperatorID,
		AdvertiserID:            req.AdvertiserID,
		RedirectionAdvertiserID: req.RedirectionAdvertiserID,
		PublisherPrice:          req.PublisherPrice,
		AdvertiserPrice:         req.AdvertiserPrice,
		FallbackEnabled:         req.FallbackEnabled,
		IsLive:                  req.IsLive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists every campaign with its related entity names
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	campaigns, err := h.processor.ListCampaigns(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign retrieves a campaign by ID
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	campaignID, ok := getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign updates a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	campaignID, ok := getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(c.Request.Context(), campaignID, processor.UpdateCampaignParams{
		Name:                    req.Name,
		PublisherID:             req.PublisherID,
		CountryID:               req.CountryID,
		OperatorID:              req.OperatorID,
		AdvertiserID:            req.AdvertiserID,
		RedirectionAdvertiserID: req.RedirectionAdvertiserID,
		PublisherPrice:          req.PublisherPrice,
		AdvertiserPrice:         req.AdvertiserPrice,
		FallbackEnabled:         req.FallbackEnabled,
		IsLive:                  req.IsLive,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign deletes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	campaignID, ok := getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.DeleteCampaign(c.Request.Context(), campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func getCampaignID(c *gin.Context) (int64, bool) {
	campaignID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || campaignID <= 0 {
		apierrors.RespondWithInvalidID(c, "id")
		return 0, false
	}
	return campaignID, true
}

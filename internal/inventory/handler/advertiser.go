package handler

import (
	"net/http"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/store"

	"github.com/gin-gonic/gin"
)

type CreateAdvertiserRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	CompanyName    string `json:"company_name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email,max=100"`
	Status         string `json:"status" binding:"required,max=50"`
	SendOTPURL     string `json:"send_otp_url" binding:"required,url,max=200"`
	VerifyOTPURL   string `json:"verify_otp_url" binding:"required,url,max=200"`
	StatusCheckURL string `json:"status_check_url" binding:"required,url,max=200"`
	Capping        string `json:"capping" binding:"max=100"`
	OperatorID     int64  `json:"operator_id" binding:"required,gt=0"`
	CountryID      int64  `json:"country_id" binding:"required,gt=0"`
}

type UpdateAdvertiserRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	CompanyName    *string `json:"company_name,omitempty" binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email,max=100"`
	Status         *string `json:"status,omitempty" binding:"omitempty,min=1,max=50"`
	SendOTPURL     *string `json:"send_otp_url,omitempty" binding:"omitempty,url,max=200"`
	VerifyOTPURL   *string `json:"verify_otp_url,omitempty" binding:"omitempty,url,max=200"`
	StatusCheckURL *string `json:"status_check_url,omitempty" binding:"omitempty,url,max=200"`
	Capping        *string `json:"capping,omitempty" binding:"omitempty,max=100"`
	OperatorID     *int64  `json:"operator_id,omitempty" binding:"omitempty,gt=0"`
	CountryID      *int64  `json:"country_id,omitempty" binding:"omitempty,gt=0"`
}

func (h *Handler) HandleCreateAdvertiser(c *gin.Context) {
	var req CreateAdvertiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	advertiser, err := h.processor.CreateAdvertiser(c.Request.Context(), store.CreateAdvertiserParams{
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		Email:          req.Email,
		Status:         req.Status,
		SendOTPURL:     req.SendOTPURL,
		VerifyOTPURL:   req.VerifyOTPURL,
		StatusCheckURL: req.StatusCheckURL,
		Capping:        req.Capping,
		OperatorID:     req.OperatorID,
		CountryID:      req.CountryID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, advertiser)
}

func (h *Handler) HandleListAdvertisers(c *gin.Context) {
	advertisers, err := h.processor.ListAdvertisers(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advertisers)
}

func (h *Handler) HandleGetAdvertiser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	advertiser, err := h.processor.GetAdvertiser(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advertiser)
}

func (h *Handler) HandleUpdateAdvertiser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateAdvertiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	advertiser, err := h.processor.UpdateAdvertiser(c.Request.Context(), id, store.UpdateAdvertiserParams{
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		Email:          req.Email,
		Status:         req.Status,
		SendOTPURL:     req.SendOTPURL,
		VerifyOTPURL:   req.VerifyOTPURL,
		StatusCheckURL: req.StatusCheckURL,
		Capping:        req.Capping,
		OperatorID:     req.OperatorID,
		CountryID:      req.CountryID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advertiser)
}

func (h *Handler) HandleDeleteAdvertiser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	advertiser, err := h.processor.DeleteAdvertiser(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, advertiser)
}

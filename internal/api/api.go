package api

import (
	"context"
	"net/http"

	authHandler "inapp-server/internal/auth/handler"
	campaignHandler "inapp-server/internal/campaign/handler"
	inventoryHandler "inapp-server/internal/inventory/handler"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	inventoryHandler inventoryHandler.Handler
	campaignHandler  campaignHandler.Handler
	db               Pinger
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	inventoryHandler inventoryHandler.Handler,
	campaignHandler campaignHandler.Handler,
	db Pinger,
) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		inventoryHandler: inventoryHandler,
		campaignHandler:  campaignHandler,
		db:               db,
	}
}

// RegisterRoutes mounts every route. Reads and the auth endpoints are public;
// every write goes through the session gate.
func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", a.authHandler.HandleRegister)
		authGroup.POST("/login", a.authHandler.HandleLogin)
	}

	inv := a.inventoryHandler
	apiGroup.GET("/countries", inv.HandleListCountries)
	apiGroup.GET("/countries/:id", inv.HandleGetCountry)
	apiGroup.GET("/countries/:id/operators", inv.HandleListCountryOperators)
	apiGroup.GET("/operators", inv.HandleListOperators)
	apiGroup.GET("/operators/:id", inv.HandleGetOperator)
	apiGroup.GET("/operators/:id/advertisers", inv.HandleListOperatorAdvertisers)
	apiGroup.GET("/advertisers", inv.HandleListAdvertisers)
	apiGroup.GET("/advertisers/:id", inv.HandleGetAdvertiser)
	apiGroup.GET("/publishers", inv.HandleListPublishers)
	apiGroup.GET("/publishers/:id", inv.HandleGetPublisher)
	apiGroup.GET("/cache/publishers/:id", inv.HandleGetPublisherState)
	apiGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)
	apiGroup.GET("/campaigns/:id", a.campaignHandler.HandleGetCampaign)

	protectedGroup := apiGroup.Group("", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/protected/me", a.authHandler.GetUserInfo)

		protectedGroup.POST("/countries", inv.HandleCreateCountry)
		protectedGroup.PUT("/countries/:id", inv.HandleUpdateCountry)
		protectedGroup.DELETE("/countries/:id", inv.HandleDeleteCountry)

		protectedGroup.POST("/operators", inv.HandleCreateOperator)
		protectedGroup.PUT("/operators/:id", inv.HandleUpdateOperator)
		protectedGroup.DELETE("/operators/:id", inv.HandleDeleteOperator)

		protectedGroup.POST("/advertisers", inv.HandleCreateAdvertiser)
		protectedGroup.PUT("/advertisers/:id", inv.HandleUpdateAdvertiser)
		protectedGroup.DELETE("/advertisers/:id", inv.HandleDeleteAdvertiser)

		protectedGroup.POST("/publishers", inv.HandleCreatePublisher)
		protectedGroup.PUT("/publishers/:id", inv.HandleUpdatePublisher)
		protectedGroup.DELETE("/publishers/:id", inv.HandleDeletePublisher)

		protectedGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		protectedGroup.PUT("/campaigns/:id", a.campaignHandler.HandleUpdateCampaign)
		protectedGroup.DELETE("/campaigns/:id", a.campaignHandler.HandleDeleteCampaign)
	}
}

// Health reports liveness and whether the database answers.
func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.db != nil {
			if err := a.db.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

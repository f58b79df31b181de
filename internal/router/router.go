package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListPools(c *ginext.Context)
	GetPool(c *ginext.Context)
	CreatePool(c *ginext.Context)
	SetPoolMetadata(c *ginext.Context)
	SyncPool(c *ginext.Context)
	SyncAll(c *ginext.Context)
	JoinPool(c *ginext.Context)
	ClaimTicket(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUser(c *ginext.Context)
	GetUserParticipations(c *ginext.Context)
	GetUserPools(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Pools
		api.GET("/pools", h.ListPools)
		api.POST("/pools", h.CreatePool)
		api.GET("/pools/:id", h.GetPool)
		api.PUT("/pools/:id/metadata", h.SetPoolMetadata)
		api.POST("/pools/:id/sync", h.SyncPool)
		api.POST("/sync", h.SyncAll)

		// Participations
		api.POST("/pools/:id/join", h.JoinPool)
		api.POST("/pools/:id/claim", h.ClaimTicket)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:address", h.GetUser)
		api.GET("/users/:address/participations", h.GetUserParticipations)
		api.GET("/users/:address/pools", h.GetUserPools)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

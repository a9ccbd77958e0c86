package httpx

import "github.com/gin-gonic/gin"

// NewRouter mounts the order pipeline routes on a fresh gin engine.
// Middleware beyond recovery (tracing, logging) is the caller's to add.
func NewRouter(handler *Handler, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	v1 := router.Group("/v1")
	v1.POST("/orders/process", handler.ProcessOrders)
	v1.GET("/orders/queue", handler.QueueContents)
	return router
}

package handler

import (
	"github.com/Popolzen/unreputable/internal/audit"
	"github.com/Popolzen/unreputable/internal/logger"
	"github.com/Popolzen/unreputable/internal/middleware/compressor"
	"github.com/Popolzen/unreputable/internal/service/linkstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter настраивает роуты и middleware.
// Маски короче шести символов невалидны, поэтому /ping и /stats не пересекаются с ними.
func NewRouter(store *linkstore.LinkStore, pub *audit.Publisher, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))
	r.Use(compressor.Compresser())

	r.POST("/", CreateHandler(store, pub, log))
	r.GET("/ping", PingHandler(store, log))
	r.GET("/stats/:mask", StatsHandler(store, log))
	r.GET("/:mask", ResolveHandler(store, pub, log))
	r.NoRoute(NotFoundHandler())
	return r
}

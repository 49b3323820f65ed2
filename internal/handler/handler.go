package handler

import (
	_ "embed"
	"errors"
	"net/http"
	"strings"

	"github.com/Popolzen/unreputable/internal/audit"
	"github.com/Popolzen/unreputable/internal/model"
	"github.com/Popolzen/unreputable/internal/service/linkstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed notfound.html
var notFoundPage []byte

// CreateHandler создаёт маску из JSON {mask, actual}
func CreateHandler(store *linkstore.LinkStore, pub *audit.Publisher, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, log, model.NewInvalidInput("Invalid request body"))
			return
		}

		if err := store.CreateMaskedLink(c.Request.Context(), req.Mask, req.Actual); err != nil {
			writeError(c, log, err)
			return
		}

		pub.Publish(audit.NewEvent(audit.ActionCreate, strings.ToLower(strings.TrimSpace(req.Mask)), strings.TrimSpace(req.Actual)))
		c.Status(http.StatusOK)
	}
}

// ResolveHandler перенаправляет по маске
func ResolveHandler(store *linkstore.LinkStore, pub *audit.Publisher, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		mask := c.Param("mask")

		actual, found, err := store.ResolveMask(c.Request.Context(), mask)
		if err != nil {
			writeError(c, log, err)
			return
		}
		if !found {
			NotFoundHandler()(c)
			return
		}

		pub.Publish(audit.NewEvent(audit.ActionResolve, strings.ToLower(mask), actual))
		c.Redirect(http.StatusFound, redirectTarget(actual))
	}
}

// NotFoundHandler отдаёт HTML-страницу 404 для любого неизвестного пути
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", notFoundPage)
	}
}

// StatsHandler отдаёт запись {mask, actual, hits}
func StatsHandler(store *linkstore.LinkStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		link, found, err := store.GetMaskInfo(c.Request.Context(), c.Param("mask"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Not found"})
			return
		}
		c.JSON(http.StatusOK, link)
	}
}

// PingHandler проверяет доступность хранилища
func PingHandler(store *linkstore.LinkStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			log.Errorw("ping не прошёл", "error", err)
			c.String(http.StatusInternalServerError, "Storage unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}

// writeError отдаёт сообщение ошибок валидации и конфликта как есть,
// остальные логирует и скрывает за 500
func writeError(c *gin.Context, log *zap.SugaredLogger, err error) {
	var statusErr *model.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: statusErr.Message})
		return
	}

	log.Errorw("ошибка обработки запроса",
		"method", c.Request.Method,
		"uri", c.Request.RequestURI,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal Server Error"})
}

// redirectTarget добавляет http:// к ссылке без схемы
func redirectTarget(actual string) string {
	lower := strings.ToLower(actual)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return actual
	}
	return "http://" + actual
}

package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar = zap.NewNop().Sugar()

// Init инициализирует zap логгер с заданным уровнем
func Init(level string) error {
	config := zap.NewProductionConfig()

	// Настройка формата времени
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return err
	}

	sugar = logger.Sugar()
	return nil
}

// Log возвращает общий логгер. До Init это no-op логгер.
func Log() *zap.SugaredLogger {
	return sugar
}

// RequestLogger это middleware-логер для входящих HTTP-запросов.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		uri := c.Request.RequestURI
		method := c.Request.Method

		c.Next()

		log.Infow("request",
			"uri", uri,
			"method", method,
			"duration", time.Since(start),
			"status", c.Writer.Status(),
			"size", c.Writer.Size(),
		)
	}
}

func Close() {
	_ = sugar.Sync()
}

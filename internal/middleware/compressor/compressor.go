package compressor

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/Popolzen/unreputable/internal/pool"
	"github.com/gin-gonic/gin"
)

type gzipWriter struct {
	gin.ResponseWriter
	writer     *gzip.Writer
	compressed bool
}

// сжимаем только JSON и HTML: ошибки, статистику и страницу 404
func compressible(contentType string) bool {
	return strings.Contains(contentType, "application/json") || strings.Contains(contentType, "text/html")
}

func (g *gzipWriter) Write(b []byte) (int, error) {
	if compressible(g.Header().Get("Content-Type")) {
		if !g.compressed {
			g.Header().Set("Content-Encoding", "gzip")
			g.Header().Del("Content-Length")
			g.compressed = true
		}
		return g.writer.Write(b)
	}
	return g.ResponseWriter.Write(b)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) Close() error {
	if g.compressed {
		return g.writer.Close()
	}
	return nil
}

// Reset готовит writer к возврату в пул
func (g *gzipWriter) Reset() {
	g.ResponseWriter = nil
	g.writer.Reset(io.Discard)
	g.compressed = false
}

var writers = pool.New(func() *gzipWriter {
	return &gzipWriter{writer: gzip.NewWriter(io.Discard)}
})

// Compresser распаковывает gzip-запросы и сжимает ответы, если клиент это принимает
func Compresser() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Распаковка входящего запроса
		if strings.Contains(strings.ToLower(c.Request.Header.Get("Content-Encoding")), "gzip") {
			newReader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid gzip body"})
				return
			}
			c.Request.Body = newReader
			defer newReader.Close()
		}

		// 2. Подготовка сжатия ответа
		if !strings.Contains(strings.ToLower(c.Request.Header.Get("Accept-Encoding")), "gzip") {
			c.Next()
			return
		}

		orig := c.Writer
		gz := writers.Acquire(func(g *gzipWriter) {
			g.ResponseWriter = orig
			g.writer.Reset(orig)
		})
		c.Writer = gz
		// внешние middleware читают c.Writer после нас, возвращаем исходный до Release
		defer func() {
			gz.Close()
			c.Writer = orig
			writers.Release(gz)
		}()

		c.Next()
	}
}

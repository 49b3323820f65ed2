package handler_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Popolzen/unreputable/internal/audit"
	"github.com/Popolzen/unreputable/internal/handler"
	"github.com/Popolzen/unreputable/internal/repository/memory"
	"github.com/Popolzen/unreputable/internal/service/linkstore"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setupRouter создает роутер для примеров с in-memory репозиторием
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop().Sugar()
	store := linkstore.NewLinkStore(memory.NewLinkRepository(), log)
	return handler.NewRouter(store, audit.NewPublisher(), log)
}

// ExampleCreateHandler демонстрирует создание маски и переход по ней
func ExampleCreateHandler() {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mask":"My-Link","actual":"https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	fmt.Println("Create:", w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/my-link", nil))
	fmt.Println("Resolve:", w.Code, w.Header().Get("Location"))

	// Output:
	// Create: 200
	// Resolve: 302 https://example.com
}

// ExampleStatsHandler демонстрирует получение статистики по маске
func ExampleStatsHandler() {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mask":"counter","actual":"example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/counter", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats/counter", nil))
	body, _ := io.ReadAll(w.Result().Body)

	fmt.Println(w.Code, string(body))
	// Output:
	// 200 {"mask":"counter","actual":"example.com","hits":1}
}

// ExampleCreateHandler_conflict демонстрирует ответ на занятую маску
func ExampleCreateHandler_conflict() {
	router := setupRouter()

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mask":"taken1","actual":"example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		fmt.Println("Status:", w.Code)
		if w.Body.Len() > 0 {
			fmt.Println(w.Body.String())
		}
	}
	// Output:
	// Status: 200
	// Status: 400
	// {"error":"Unreputable URL already taken!"}
}

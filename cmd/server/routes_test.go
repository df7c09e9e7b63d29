package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"ledger-recovery.backend/internal/interfaces/http/handlers"
)

func TestRegisterAPIRoutes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIRoutes(r, routeDeps{
		authHandler:     &handlers.AuthHandler{},
		adminHandler:    &handlers.AdminHandler{},
		sellerHandler:   &handlers.SellerHandler{},
		clientHandler:   &handlers.ClientHandler{},
		recoveryHandler: &handlers.RecoveryHandler{},
		authMiddleware: func(c *gin.Context) {
			c.Next()
		},
	})

	routes := r.Routes()
	if len(routes) < 20 {
		t.Fatalf("expected many routes registered, got %d", len(routes))
	}

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/client/login"},
		{"POST", "/api/admin/login"},
		{"POST", "/api/seller/login"},
		{"GET", "/api/auth/me"},
		{"POST", "/api/auth/logout"},
		{"POST", "/api/client/register"},
		{"POST", "/api/recovery/wallet"},
		{"POST", "/api/recovery/seed-phrase"},
		{"POST", "/api/recovery/password"},
		{"POST", "/api/client/recovery-request"},
		{"GET", "/api/admin/dashboard"},
		{"GET", "/api/admin/audit-logs"},
		{"PATCH", "/api/admin/recovery/requests/:id/status"},
		{"POST", "/api/admin/client/:id/assign-seller"},
		{"POST", "/api/admin/client/:id/reset-password"},
		{"GET", "/api/seller/dashboard"},
		{"PATCH", "/api/seller/client/:id/amount"},
		{"POST", "/api/seller/client/:id/payment-message"},
		{"GET", "/api/client/dashboard"},
	}

	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterRootRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRootRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

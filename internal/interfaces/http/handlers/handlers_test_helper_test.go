package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"ledger-recovery.backend/internal/domain/entities"
	"ledger-recovery.backend/internal/interfaces/http/middleware"
	"ledger-recovery.backend/internal/usecases"
	"ledger-recovery.backend/pkg/crypto"
	"ledger-recovery.backend/pkg/jwt"
	"ledger-recovery.backend/pkg/logger"
	"ledger-recovery.backend/pkg/redis"
)

const testSessionKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type testEnv struct {
	router       *gin.Engine
	userRepo     *userRepoStub
	clientRepo   *clientRepoStub
	recoveryRepo *recoveryRepoStub
	auditRepo    *auditRepoStub
	kycRepo      *kycRepoStub
	settingRepo  *settingRepoStub

	admin  *entities.User
	client *entities.User
	seller *entities.User

	clientRecord *entities.ClientRecord
}

// newTestEnv builds the full HTTP surface against in-memory stores and a
// miniredis-backed session store, seeded with one user per role.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger.Init("development")
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Skipf("miniredis unavailable: %v", err)
	}
	t.Cleanup(mr.Close)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { redis.SetClient(nil) })

	store, err := redis.NewSessionStore(testSessionKeyHex)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	env := &testEnv{
		userRepo:     newUserRepoStub(),
		clientRepo:   newClientRepoStub(),
		recoveryRepo: newRecoveryRepoStub(),
		auditRepo:    newAuditRepoStub(),
		kycRepo:      newKYCRepoStub(),
		settingRepo:  newSettingRepoStub(),
	}

	env.admin = env.seedUser(t, "admin@ledger.com", "admin123", entities.UserRoleAdmin)
	env.client = env.seedUser(t, "client@demo.com", "demo123", entities.UserRoleClient)
	env.seller = env.seedUser(t, "vendeur@demo.com", "vendeur123", entities.UserRoleSeller)

	env.clientRecord = &entities.ClientRecord{
		ID:               uuid.New(),
		UserID:           env.client.ID,
		Email:            env.client.Email,
		Balances:         entities.Balances{"btc": 0.5, "eth": 2.3, "usdt": 1500},
		RiskLevel:        entities.RiskLevelLow,
		IsActive:         true,
		AssignedSellerID: null.StringFrom(env.seller.ID.String()),
	}
	env.clientRepo.items[env.clientRecord.ID] = env.clientRecord

	authUsecase := usecases.NewAuthUsecase(env.userRepo, env.clientRepo, env.auditRepo, jwtService, store)
	adminUsecase := usecases.NewAdminUsecase(env.userRepo, env.clientRepo, env.recoveryRepo, env.auditRepo, env.kycRepo, env.settingRepo, store)
	sellerUsecase := usecases.NewSellerUsecase(env.userRepo, env.clientRepo, env.auditRepo)
	clientUsecase := usecases.NewClientUsecase(env.clientRepo, env.settingRepo)
	recoveryUsecase := usecases.NewRecoveryUsecase(env.recoveryRepo)

	authHandler := NewAuthHandler(authUsecase)
	adminHandler := NewAdminHandler(adminUsecase)
	sellerHandler := NewSellerHandler(sellerUsecase)
	clientHandler := NewClientHandler(clientUsecase)
	recoveryHandler := NewRecoveryHandler(recoveryUsecase)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/client/login", authHandler.ClientLogin)
	api.POST("/admin/login", authHandler.AdminLogin)
	api.POST("/seller/login", authHandler.SellerLogin)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.GetMe)
	api.POST("/client/register", authHandler.RegisterClient)

	api.POST("/recovery/wallet", recoveryHandler.SubmitWallet)
	api.POST("/recovery/seed-phrase", recoveryHandler.SubmitSeedPhrase)
	api.POST("/recovery/password", recoveryHandler.SubmitPassword)
	api.POST("/client/recovery-request", recoveryHandler.SubmitServiceRequest)

	adminGroup := api.Group("/admin", middleware.AuthMiddleware(authUsecase), middleware.RequireRole(entities.UserRoleAdmin))
	adminGroup.GET("/dashboard", adminHandler.Dashboard)
	adminGroup.GET("/audit-logs", adminHandler.AuditLogs)
	adminGroup.GET("/kyc/documents", adminHandler.KYCDocuments)
	adminGroup.GET("/recovery/requests", adminHandler.RecoveryRequests)
	adminGroup.PATCH("/recovery/requests/:id/status", adminHandler.TransitionRecovery)
	adminGroup.GET("/taxes/pending", adminHandler.PendingTaxes)
	adminGroup.POST("/taxes/rate", adminHandler.UpdateTaxRate)
	adminGroup.GET("/client/:id", adminHandler.GetClient)
	adminGroup.GET("/client/:id/notes", adminHandler.ListNotes)
	adminGroup.POST("/client/:id/notes", adminHandler.AddNote)
	adminGroup.POST("/client/:id/status", adminHandler.UpdateStatus)
	adminGroup.POST("/client/:id/risk", adminHandler.UpdateRisk)
	adminGroup.POST("/client/:id/balances", adminHandler.UpdateBalances)
	adminGroup.POST("/client/:id/reset-password", adminHandler.ResetPassword)
	adminGroup.POST("/client/:id/assign-seller", adminHandler.AssignSeller)

	sellerGroup := api.Group("/seller", middleware.AuthMiddleware(authUsecase), middleware.RequireRole(entities.UserRoleSeller))
	sellerGroup.GET("/dashboard", sellerHandler.Dashboard)
	sellerGroup.GET("/assigned-clients", sellerHandler.AssignedClients)
	sellerGroup.PATCH("/client/:id/amount", sellerHandler.SetClientAmount)
	sellerGroup.POST("/client/:id/payment-message", sellerHandler.SendPaymentMessage)

	clientGroup := api.Group("/client", middleware.AuthMiddleware(authUsecase), middleware.RequireRole(entities.UserRoleClient))
	clientGroup.GET("/dashboard", clientHandler.Dashboard)

	env.router = r
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, password string, role entities.UserRole) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	user := &entities.User{ID: uuid.New(), Email: email, PasswordHash: hash, Role: role}
	e.userRepo.items[user.ID] = user
	return user
}

func (e *testEnv) do(t *testing.T, method, path string, body any, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login authenticates through the real endpoint and returns the session id
// from the set cookie.
func (e *testEnv) login(t *testing.T, path, email, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, path, map[string]string{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("no session cookie in login response")
	return ""
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	return e.login(t, "/api/admin/login", "admin@ledger.com", "admin123")
}

func (e *testEnv) loginClient(t *testing.T) string {
	return e.login(t, "/api/client/login", "client@demo.com", "demo123")
}

func (e *testEnv) loginSeller(t *testing.T) string {
	return e.login(t, "/api/seller/login", "vendeur@demo.com", "vendeur123")
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

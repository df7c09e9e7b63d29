package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/domain/repositories"
	"ledger-recovery.backend/pkg/crypto"
	"ledger-recovery.backend/pkg/jwt"
	"ledger-recovery.backend/pkg/redis"
)

// AuthUsecase handles role-scoped authentication and session lifecycle
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	clientRepo   repositories.ClientRepository
	auditRepo    repositories.AuditLogRepository
	jwtService   *jwt.JWTService
	sessionStore *redis.SessionStore
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	clientRepo repositories.ClientRepository,
	auditRepo repositories.AuditLogRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		auditRepo:    auditRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
	}
}

// Login authenticates credentials against the expected role and opens a
// session. A user logging in again discards their previous session.
// Wrong email, wrong password, and wrong role are indistinguishable to
// the caller.
func (u *AuthUsecase) Login(ctx context.Context, role entities.UserRole, input *entities.LoginInput, clientIP string) (string, *entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", nil, domainerrors.InvalidCredentials("Invalid credentials")
		}
		return "", nil, err
	}
	if user.Role != role {
		return "", nil, domainerrors.InvalidCredentials("Invalid credentials")
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return "", nil, domainerrors.InvalidCredentials("Invalid credentials")
	}

	token, err := u.jwtService.GenerateSessionToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	sessionID := uuid.NewString()
	data := &redis.SessionData{UserID: user.ID.String(), Token: token}
	if err := u.sessionStore.CreateSession(ctx, sessionID, data, u.jwtService.SessionExpiry()); err != nil {
		return "", nil, err
	}

	switch user.Role {
	case entities.UserRoleClient:
		if client, cerr := u.clientRepo.GetByUserID(ctx, user.ID); cerr == nil {
			// connection tracking is best effort
			_ = u.clientRepo.UpdateLastConnection(ctx, client.ID, clientIP)
		}
	case entities.UserRoleAdmin:
		appendAudit(ctx, u.auditRepo, user.ID, entities.AuditActionAdminLogin, "user", user.ID.String(), "", clientIP)
	}

	return sessionID, user, nil
}

// Logout invalidates the session. Idempotent: an unknown or already
// expired session id still succeeds.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string, clientIP string) error {
	if sessionID == "" {
		return nil
	}

	data, err := u.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	if err := u.sessionStore.DeleteSession(ctx, sessionID); err != nil {
		return err
	}

	if claims, cerr := u.jwtService.ValidateToken(data.Token); cerr == nil && claims.Role == string(entities.UserRoleAdmin) {
		appendAudit(ctx, u.auditRepo, claims.UserID, entities.AuditActionAdminLogout, "user", claims.UserID.String(), "", clientIP)
	}

	return nil
}

// CurrentPrincipal resolves the identity behind a session id. Expired
// sessions are evicted lazily here rather than by a background sweep.
func (u *AuthUsecase) CurrentPrincipal(ctx context.Context, sessionID string) (*entities.Principal, error) {
	if sessionID == "" {
		return nil, domainerrors.Unauthenticated("Not authenticated")
	}

	data, err := u.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, domainerrors.Unauthenticated("Not authenticated")
		}
		return nil, err
	}

	claims, err := u.jwtService.ValidateToken(data.Token)
	if err != nil {
		_ = u.sessionStore.DeleteSession(ctx, sessionID)
		return nil, domainerrors.Unauthenticated("Not authenticated")
	}

	return &entities.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   entities.UserRole(claims.Role),
	}, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// RegisterClient creates a client account with its registry record.
// New records start with the default demo balance set.
func (u *AuthUsecase) RegisterClient(ctx context.Context, input *entities.RegisterClientInput) (*entities.User, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleClient,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	client := &entities.ClientRecord{
		UserID:    user.ID,
		Email:     user.Email,
		Balances:  entities.DefaultBalances(),
		RiskLevel: entities.RiskLevelLow,
		IsActive:  true,
		TaxStatus: entities.TaxStatusUnpaid,
	}
	if err := u.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return user, nil
}

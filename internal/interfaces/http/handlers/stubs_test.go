package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
)

type userRepoStub struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{items: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.items[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.items {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (s *userRepoStub) ListByRole(_ context.Context, role entities.UserRole) ([]*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.User, 0)
	for _, user := range s.items {
		if user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

type clientRepoStub struct {
	mu       sync.Mutex
	items    map[uuid.UUID]*entities.ClientRecord
	notes    map[uuid.UUID][]*entities.AdminNote
	messages map[uuid.UUID][]*entities.PaymentMessage
}

func newClientRepoStub() *clientRepoStub {
	return &clientRepoStub{
		items:    map[uuid.UUID]*entities.ClientRecord{},
		notes:    map[uuid.UUID][]*entities.AdminNote{},
		messages: map[uuid.UUID][]*entities.PaymentMessage{},
	}
}

func (s *clientRepoStub) Create(_ context.Context, client *entities.ClientRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	s.items[client.ID] = client
	return nil
}

func (s *clientRepoStub) get(id uuid.UUID) (*entities.ClientRecord, error) {
	client, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return client, nil
}

func (s *clientRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.ClientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

func (s *clientRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.ClientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, client := range s.items {
		if client.UserID == userID {
			return client, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *clientRepoStub) List(_ context.Context) ([]*entities.ClientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.ClientRecord, 0, len(s.items))
	for _, client := range s.items {
		out = append(out, client)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *clientRepoStub) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]*entities.ClientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.ClientRecord, 0)
	for _, client := range s.items {
		if client.AssignedSellerID.Valid && client.AssignedSellerID.String == sellerID.String() {
			out = append(out, client)
		}
	}
	return out, nil
}

func (s *clientRepoStub) ListPendingTaxes(_ context.Context) ([]*entities.ClientRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.ClientRecord, 0)
	for _, client := range s.items {
		if client.IsActive && client.TaxPercentage > 0 && client.TaxStatus == entities.TaxStatusUnpaid {
			out = append(out, client)
		}
	}
	return out, nil
}

func (s *clientRepoStub) ReplaceBalances(_ context.Context, id uuid.UUID, balances entities.Balances) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.Balances = balances
	return nil
}

func (s *clientRepoStub) UpdateRiskLevel(_ context.Context, id uuid.UUID, level entities.RiskLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.RiskLevel = level
	return nil
}

func (s *clientRepoStub) UpdateActiveStatus(_ context.Context, id uuid.UUID, isActive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.IsActive = isActive
	return nil
}

func (s *clientRepoStub) UpdateAmount(_ context.Context, id uuid.UUID, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.Amount = amount
	return nil
}

func (s *clientRepoStub) UpdateAssignedSeller(_ context.Context, id uuid.UUID, sellerID null.String) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.AssignedSellerID = sellerID
	return nil
}

func (s *clientRepoStub) UpdateLastConnection(_ context.Context, id uuid.UUID, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	client, err := s.get(id)
	if err != nil {
		return err
	}
	client.LastConnection = null.TimeFrom(time.Now())
	client.LastIP = null.NewString(ip, ip != "")
	return nil
}

func (s *clientRepoStub) AddNote(_ context.Context, note *entities.AdminNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.get(note.ClientID); err != nil {
		return err
	}
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	note.CreatedAt = time.Now()
	s.notes[note.ClientID] = append(s.notes[note.ClientID], note)
	return nil
}

func (s *clientRepoStub) ListNotes(_ context.Context, clientID uuid.UUID) ([]*entities.AdminNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes[clientID], nil
}

func (s *clientRepoStub) AddPaymentMessage(_ context.Context, msg *entities.PaymentMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.get(msg.ClientID); err != nil {
		return err
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()
	s.messages[msg.ClientID] = append(s.messages[msg.ClientID], msg)
	return nil
}

func (s *clientRepoStub) ListPaymentMessages(_ context.Context, clientID uuid.UUID) ([]*entities.PaymentMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[clientID], nil
}

type recoveryRepoStub struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entities.RecoveryRequest
}

func newRecoveryRepoStub() *recoveryRepoStub {
	return &recoveryRepoStub{items: map[uuid.UUID]*entities.RecoveryRequest{}}
}

func (s *recoveryRepoStub) Create(_ context.Context, req *entities.RecoveryRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = entities.RecoveryStatusPending
	}
	req.CreatedAt = time.Now()
	s.items[req.ID] = req
	return nil
}

func (s *recoveryRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.RecoveryRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return req, nil
}

func (s *recoveryRepoStub) List(_ context.Context) ([]*entities.RecoveryRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.RecoveryRequest, 0, len(s.items))
	for _, req := range s.items {
		out = append(out, req)
	}
	return out, nil
}

func (s *recoveryRepoStub) ListPending(_ context.Context) ([]*entities.RecoveryRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.RecoveryRequest, 0)
	for _, req := range s.items {
		if !req.Status.Terminal() {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *recoveryRepoStub) Transition(_ context.Context, id uuid.UUID, target entities.RecoveryStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if !req.Status.CanTransitionTo(target) {
		return domainerrors.InvalidTransition("cannot transition from " + string(req.Status) + " to " + string(target))
	}
	req.Status = target
	return nil
}

type auditRepoStub struct {
	mu      sync.Mutex
	entries []*entities.AuditLogEntry
}

func newAuditRepoStub() *auditRepoStub {
	return &auditRepoStub{}
}

func (s *auditRepoStub) Append(_ context.Context, entry *entities.AuditLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *auditRepoStub) Query(_ context.Context, filter entities.AuditLogFilter) ([]*entities.AuditLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.AuditLogEntry, 0)
	for _, entry := range s.entries {
		if filter.ActorID != uuid.Nil && entry.ActorID != filter.ActorID {
			continue
		}
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *auditRepoStub) byAction(action string) []*entities.AuditLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.AuditLogEntry, 0)
	for _, entry := range s.entries {
		if entry.Action == action {
			out = append(out, entry)
		}
	}
	return out
}

type kycRepoStub struct {
	mu    sync.Mutex
	items []*entities.KYCDocument
}

func newKYCRepoStub() *kycRepoStub {
	return &kycRepoStub{}
}

func (s *kycRepoStub) Create(_ context.Context, doc *entities.KYCDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	s.items = append(s.items, doc)
	return nil
}

func (s *kycRepoStub) List(_ context.Context) ([]*entities.KYCDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, nil
}

func (s *kycRepoStub) ListByClient(_ context.Context, clientID uuid.UUID) ([]*entities.KYCDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entities.KYCDocument, 0)
	for _, doc := range s.items {
		if doc.ClientID == clientID {
			out = append(out, doc)
		}
	}
	return out, nil
}

type settingRepoStub struct {
	mu     sync.Mutex
	values map[string]string
}

func newSettingRepoStub() *settingRepoStub {
	return &settingRepoStub{values: map[string]string{}}
}

func (s *settingRepoStub) Get(_ context.Context, key string) (*entities.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.Setting{Key: key, Value: value}, nil
}

func (s *settingRepoStub) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

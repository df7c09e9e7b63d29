package usecases

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/domain/repositories"
)

// ClientUsecase handles the client's own dashboard view
type ClientUsecase struct {
	clientRepo  repositories.ClientRepository
	settingRepo repositories.SettingRepository
}

// NewClientUsecase creates a new client usecase
func NewClientUsecase(clientRepo repositories.ClientRepository, settingRepo repositories.SettingRepository) *ClientUsecase {
	return &ClientUsecase{clientRepo: clientRepo, settingRepo: settingRepo}
}

// ClientDashboard is what a logged-in client sees: their own record,
// any payment messages from their seller, and the platform tax rate.
type ClientDashboard struct {
	Client          *entities.ClientRecord    `json:"client"`
	PaymentMessages []*entities.PaymentMessage `json:"paymentMessages"`
	TaxRate         float64                   `json:"taxRate"`
}

// Dashboard assembles the dashboard for the client owning userID.
func (u *ClientUsecase) Dashboard(ctx context.Context, userID uuid.UUID) (*ClientDashboard, error) {
	client, err := u.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages, err := u.clientRepo.ListPaymentMessages(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	taxRate := entities.DefaultGlobalTaxRate
	setting, err := u.settingRepo.Get(ctx, entities.SettingKeyGlobalTax)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if err == nil {
		if rate, perr := strconv.ParseFloat(setting.Value, 64); perr == nil {
			taxRate = rate
		}
	}

	return &ClientDashboard{
		Client:          client,
		PaymentMessages: messages,
		TaxRate:         taxRate,
	}, nil
}

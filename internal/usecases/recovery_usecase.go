package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"ledger-recovery.backend/internal/domain/entities"
	domainerrors "ledger-recovery.backend/internal/domain/errors"
	"ledger-recovery.backend/internal/domain/repositories"
	"ledger-recovery.backend/pkg/metrics"
)

// seedPhraseWordCounts are the BIP-39 phrase lengths an intake accepts.
var seedPhraseWordCounts = map[int]struct{}{12: {}, 15: {}, 18: {}, 21: {}, 24: {}}

// RecoveryUsecase handles public recovery-request intake. Submissions
// require no authentication; listing and transitions are admin-only and
// live on AdminUsecase.
type RecoveryUsecase struct {
	recoveryRepo repositories.RecoveryRequestRepository
}

// NewRecoveryUsecase creates a new recovery usecase
func NewRecoveryUsecase(recoveryRepo repositories.RecoveryRequestRepository) *RecoveryUsecase {
	return &RecoveryUsecase{recoveryRepo: recoveryRepo}
}

// SubmitWalletRecovery files a lost-wallet request.
func (u *RecoveryUsecase) SubmitWalletRecovery(ctx context.Context, input *entities.WalletRecoveryInput) (*entities.RecoveryRequest, error) {
	if addr := strings.TrimSpace(input.WalletAddress); addr != "" && strings.HasPrefix(addr, "0x") && !common.IsHexAddress(addr) {
		return nil, domainerrors.Validation("walletAddress is not a valid hex address")
	}

	payload := map[string]string{
		"walletType":      input.WalletType,
		"walletAddress":   input.WalletAddress,
		"lastTransaction": input.LastTransaction,
		"description":     input.Description,
		"contactInfo":     input.ContactInfo,
	}
	return u.submit(ctx, entities.RecoveryTypeWallet, input.Email, payload)
}

// SubmitSeedPhraseRecovery files a partial-seed-phrase request.
func (u *RecoveryUsecase) SubmitSeedPhraseRecovery(ctx context.Context, input *entities.SeedPhraseRecoveryInput) (*entities.RecoveryRequest, error) {
	if _, ok := seedPhraseWordCounts[input.WordCount]; !ok {
		return nil, domainerrors.Validation(fmt.Sprintf("wordCount %d is not a valid phrase length", input.WordCount))
	}

	payload := map[string]string{
		"partialWords":     input.PartialWords,
		"wordCount":        strconv.Itoa(input.WordCount),
		"approximateOrder": input.ApproximateOrder,
		"hints":            input.Hints,
	}
	return u.submit(ctx, entities.RecoveryTypeSeedPhrase, input.Email, payload)
}

// SubmitPasswordRecovery files a forgotten-password request.
func (u *RecoveryUsecase) SubmitPasswordRecovery(ctx context.Context, input *entities.PasswordRecoveryInput) (*entities.RecoveryRequest, error) {
	payload := map[string]string{
		"passwordHints": input.PasswordHints,
		"variations":    input.Variations,
		"contextInfo":   input.ContextInfo,
	}
	return u.submit(ctx, entities.RecoveryTypePassword, input.Email, payload)
}

// SubmitServiceRequest files a generic client service request.
func (u *RecoveryUsecase) SubmitServiceRequest(ctx context.Context, input *entities.ServiceRequestInput) (*entities.RecoveryRequest, error) {
	if input.EstimatedValue < 0 {
		return nil, domainerrors.Validation("estimatedValue must not be negative")
	}

	payload := map[string]string{
		"serviceType":        input.ServiceType,
		"clientName":         input.ClientName,
		"phoneNumber":        input.PhoneNumber,
		"walletType":         input.WalletType,
		"problemDescription": input.ProblemDescription,
		"urgencyLevel":       input.UrgencyLevel,
		"estimatedValue":     strconv.FormatFloat(input.EstimatedValue, 'f', -1, 64),
	}
	return u.submit(ctx, entities.RecoveryTypeService, input.ClientEmail, payload)
}

func (u *RecoveryUsecase) submit(ctx context.Context, reqType entities.RecoveryType, email string, payload map[string]string) (*entities.RecoveryRequest, error) {
	for key, value := range payload {
		if value == "" {
			delete(payload, key)
		}
	}

	req := &entities.RecoveryRequest{
		Type:    reqType,
		Email:   email,
		Payload: payload,
		Status:  entities.RecoveryStatusPending,
	}
	if err := u.recoveryRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	metrics.RecoveryRequestsReceived.WithLabelValues(string(reqType)).Inc()
	return req, nil
}

package packages

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"tracker/internal/entities"
	"tracker/pkg/logger"
	"tracker/pkg/tx"
)

// trackingNumberAttempts ограничивает перегенерацию номера при коллизии
// уникального индекса. Вероятность коллизии ничтожна, но не нулевая.
const trackingNumberAttempts = 3

const trackingNumberDigits = 9

type Packages struct {
	repository   Repository
	ledger       Ledger
	confirmation ConfirmationService
	txManager    TxManager
	log          serviceLogger
}

func New(
	log serviceLogger,
	repository Repository,
	ledger Ledger,
	confirmation ConfirmationService,
	txManager TxManager,
) *Packages {
	return &Packages{
		repository:   repository,
		ledger:       ledger,
		confirmation: confirmation,
		txManager:    txManager,
		log:          log.With(),
	}
}

func (p *Packages) CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.UserID == nil ||
		packageModify.Sender == nil ||
		packageModify.Receiver == nil ||
		packageModify.PackageType == nil ||
		packageModify.Weight == nil ||
		packageModify.Amount == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidUserID(*packageModify.UserID) {
		return nil, ErrMissingRequiredFields
	}

	if !isValidParty(*packageModify.Sender) || !isValidParty(*packageModify.Receiver) {
		return nil, ErrInvalidParty
	}
	if !entities.IsValidPackageType(*packageModify.PackageType) {
		return nil, ErrInvalidPackageType
	}
	if *packageModify.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	if *packageModify.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	var created *entities.Package
	var err error
	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		created, err = p.createWithNewTrackingNumber(ctx, packageModify)
		if errors.Is(err, ErrTrackingNumberConflict) {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	// Код подтверждения выдаётся один раз, при оформлении посылки.
	// Посылка к этому моменту уже закоммичена: вернуть ошибку значит
	// спровоцировать повтор запроса и дубликат с новым трек-номером.
	if err := p.confirmation.IssueCode(ctx, created.TrackingNumber); err != nil {
		p.log.Error("issue delivery code",
			logger.NewField("tracking_number", created.TrackingNumber),
			logger.NewField("error", err),
		)
		return created, nil
	}

	return p.repository.GetByTrackingNumber(ctx, created.TrackingNumber)
}

func (p *Packages) createWithNewTrackingNumber(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	trackingNumber, err := newTrackingNumber()
	if err != nil {
		return nil, fmt.Errorf("generate tracking number: %w", err)
	}

	now := time.Now().UTC()
	status := entities.StatusCreated
	paid := false

	packageModify.TrackingNumber = &trackingNumber
	packageModify.Status = &status
	packageModify.Paid = &paid

	var created *entities.Package
	err = p.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = p.repository.Create(ctx, packageModify)
		if txErr != nil {
			return fmt.Errorf("create package: %w", txErr)
		}

		_, txErr = p.ledger.Append(ctx, entities.TrackingEvent{
			PackageID:      created.ID,
			TrackingNumber: created.TrackingNumber,
			Status:         entities.StatusCreated,
			Remarks:        "Package created",
			Timestamp:      now,
		})
		if txErr != nil {
			return fmt.Errorf("append created event: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (p *Packages) UpdateStatus(
	ctx context.Context,
	trackingNumber string,
	newStatus entities.PackageStatus,
	location, remarks string,
) (*entities.Package, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}
	if _, err := entities.ParsePackageStatus(newStatus.String()); err != nil {
		return nil, err
	}

	var updated *entities.Package
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := p.repository.GetByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}

		if current.Status.IsTerminal() {
			return ErrTerminalState
		}
		if !current.Status.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}

		var deliveredAt *time.Time
		if newStatus == entities.StatusDelivered {
			if !current.DeliveryConfirmed {
				return ErrDeliveryNotConfirmed
			}
			now := time.Now().UTC()
			deliveredAt = &now
		}

		updated, err = p.repository.UpdateStatusWhereCurrent(ctx, trackingNumber, current.Status, newStatus, deliveredAt)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		_, err = p.ledger.Append(ctx, entities.TrackingEvent{
			PackageID:      updated.ID,
			TrackingNumber: updated.TrackingNumber,
			Status:         newStatus,
			Location:       location,
			Remarks:        remarks,
			Timestamp:      updated.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("append tracking event: %w", err)
		}
		return nil
	})
	if err != nil {
		// Конфликт сериализации может всплыть и на фиксации транзакции,
		// когда условный UPDATE внутри неё уже отработал.
		if errors.Is(err, tx.ErrSerialization) {
			return nil, ErrConcurrentModification
		}
		return nil, err
	}
	return updated, nil
}

func (p *Packages) GetPackage(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	found, err := p.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	return found, nil
}

func (p *Packages) GetPackagesByUser(ctx context.Context, userID string) ([]entities.Package, error) {
	if userID == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := p.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get packages by user: %w", err)
	}
	return found, nil
}

func (p *Packages) MarkPaid(ctx context.Context, trackingNumber string) error {
	if !isValidTrackingNumber(trackingNumber) {
		return ErrInvalidTrackingNumber
	}

	if err := p.repository.SetPaid(ctx, trackingNumber); err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	return nil
}

func newTrackingNumber() (string, error) {
	digits := make([]byte, 0, trackingNumberDigits)
	for i := 0; i < trackingNumberDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits = append(digits, byte('0'+n.Int64()))
	}
	return "TRK" + string(digits), nil
}

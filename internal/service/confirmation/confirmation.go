package confirmation

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"tracker/internal/entities"
	"tracker/pkg/logger"
)

const codeLength = 6

type Confirmation struct {
	repository Repository
	identity   IdentityGateway
	notifier   Notifier
	log        serviceLogger
}

func New(
	log serviceLogger,
	repository Repository,
	identity IdentityGateway,
	notifier Notifier,
) *Confirmation {
	return &Confirmation{
		repository: repository,
		identity:   identity,
		notifier:   notifier,
		log:        log.With(),
	}
}

// IssueCode генерирует одноразовый код доставки и сохраняет его на посылке.
// Уведомление получателю — побочный эффект: его сбой логируется и не
// откатывает выдачу кода.
func (c *Confirmation) IssueCode(ctx context.Context, trackingNumber string) error {
	pkg, err := c.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return fmt.Errorf("get package: %w", err)
	}

	if pkg.Status == entities.StatusDelivered {
		return ErrAlreadyDelivered
	}

	code, err := newCode()
	if err != nil {
		return fmt.Errorf("generate delivery code: %w", err)
	}

	if err := c.repository.SetDeliveryOtp(ctx, trackingNumber, code); err != nil {
		return fmt.Errorf("store delivery code: %w", err)
	}

	c.notifyCustomer(ctx, pkg.UserID, trackingNumber, code)
	return nil
}

func (c *Confirmation) ConfirmCode(ctx context.Context, trackingNumber, suppliedCode string) error {
	if !isValidCode(suppliedCode) {
		return ErrInvalidCode
	}

	// Существование посылки проверяется отдельно, чтобы отличать
	// NotFound от неверного кода. Сама сверка — одиночный CAS в репозитории.
	if _, err := c.repository.GetByTrackingNumber(ctx, trackingNumber); err != nil {
		return fmt.Errorf("get package: %w", err)
	}

	if err := c.repository.ConsumeDeliveryOtp(ctx, trackingNumber, suppliedCode); err != nil {
		return err
	}
	return nil
}

func (c *Confirmation) notifyCustomer(ctx context.Context, userID, trackingNumber, code string) {
	notifyLog := c.log.With(
		logger.NewField("tracking_number", trackingNumber),
		logger.NewField("user", userID),
	)

	user, err := c.identity.GetUserByID(ctx, userID)
	if err != nil {
		notifyLog.Warn("delivery code notification skipped: identity lookup failed",
			logger.NewField("error", err),
		)
		return
	}

	subject := fmt.Sprintf("Delivery OTP for your package: %s", trackingNumber)
	body := fmt.Sprintf(
		"Dear Customer,\n\n"+
			"Your package with tracking number %s has been booked successfully.\n"+
			"The 6-digit delivery OTP is: %s\n\n"+
			"Please provide this OTP to the courier at the time of delivery.\n\n"+
			"Thank you for using our service!",
		trackingNumber, code,
	)

	if err := c.notifier.Send(ctx, user.Email, subject, body); err != nil {
		notifyLog.Error("delivery code notification failed",
			logger.NewField("error", err),
		)
	}
}

func isValidCode(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

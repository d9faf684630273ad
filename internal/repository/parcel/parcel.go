package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/confirmation"
	"tracker/internal/service/packages"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, tracking_number, user_id,
		sender_name, sender_phone, sender_email, sender_address, sender_city, sender_pincode,
		receiver_name, receiver_phone, receiver_email, receiver_address, receiver_city, receiver_pincode,
		package_type, weight, description, amount, paid, status,
		delivery_otp, delivery_confirmed, created_at, updated_at, delivered_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	packageModifyDB := FromDomainModify(&packageModify)

	query := `
		INSERT INTO packages (
			tracking_number, user_id,
			sender_name, sender_phone, sender_email, sender_address, sender_city, sender_pincode,
			receiver_name, receiver_phone, receiver_email, receiver_address, receiver_city, receiver_pincode,
			package_type, weight, description, amount, paid, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, COALESCE($17, ''), $18, $19, $20)
		RETURNING ` + packageColumns

	var packageDB PackageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		packageModifyDB.TrackingNumber,
		packageModifyDB.UserID,
		packageModifyDB.SenderName,
		packageModifyDB.SenderPhone,
		packageModifyDB.SenderEmail,
		packageModifyDB.SenderAddress,
		packageModifyDB.SenderCity,
		packageModifyDB.SenderPincode,
		packageModifyDB.ReceiverName,
		packageModifyDB.ReceiverPhone,
		packageModifyDB.ReceiverEmail,
		packageModifyDB.ReceiverAddress,
		packageModifyDB.ReceiverCity,
		packageModifyDB.ReceiverPincode,
		packageModifyDB.PackageType,
		packageModifyDB.Weight,
		packageModifyDB.Description,
		packageModifyDB.Amount,
		packageModifyDB.Paid,
		packageModifyDB.Status,
	).Scan(scanTargets(&packageDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, packages.ErrTrackingNumberConflict
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE tracking_number = $1`

	var packageDB PackageDB
	err := r.querier.QueryRow(ctx, query, trackingNumber).Scan(scanTargets(&packageDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packages.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	var result []entities.Package
	for rows.Next() {
		var packageDB PackageDB
		if err := rows.Scan(scanTargets(&packageDB)...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository scan error: %w", err)
		}
		result = append(result, *ToDomain(&packageDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository rows error: %w", err)
	}

	return result, nil
}

// UpdateStatusWhereCurrent — условное обновление статуса: строка меняется,
// только если статус всё ещё равен current. Ноль затронутых строк при живой
// посылке означает проигранную гонку.
func (r *Repository) UpdateStatusWhereCurrent(
	ctx context.Context,
	trackingNumber string,
	current, next entities.PackageStatus,
	deliveredAt *time.Time,
) (*entities.Package, error) {
	query := `
		UPDATE packages
		SET status = $3,
			delivered_at = $4,
			updated_at = NOW()
		WHERE tracking_number = $1 AND status = $2
		RETURNING ` + packageColumns

	var packageDB PackageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		trackingNumber,
		current.String(),
		next.String(),
		deliveredAt,
	).Scan(scanTargets(&packageDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packages.ErrConcurrentModification
		}
		// Под Serializable конкурентный UPDATE той же строки приходит не как
		// ноль строк, а как ошибка сериализации 40001.
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, packages.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected parcel repository update status error: %w", err)
	}

	return ToDomain(&packageDB), nil
}

func (r *Repository) SetPaid(ctx context.Context, trackingNumber string) error {
	query := `
		UPDATE packages
		SET paid = TRUE,
			updated_at = NOW()
		WHERE tracking_number = $1
	`

	result, err := r.querier.Exec(ctx, query, trackingNumber)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository set paid error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return packages.ErrPackageNotFound
	}
	return nil
}

func (r *Repository) SetDeliveryOtp(ctx context.Context, trackingNumber, code string) error {
	query := `
		UPDATE packages
		SET delivery_otp = $2,
			delivery_confirmed = FALSE,
			updated_at = NOW()
		WHERE tracking_number = $1
	`

	result, err := r.querier.Exec(ctx, query, trackingNumber, code)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository set otp error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return packages.ErrPackageNotFound
	}
	return nil
}

// ConsumeDeliveryOtp сверяет и гасит код одним UPDATE: сверка происходит в
// БД, поэтому неверный, отсутствующий и уже использованный код дают
// одинаковый результат без различий во времени ответа и тексте ошибки.
func (r *Repository) ConsumeDeliveryOtp(ctx context.Context, trackingNumber, code string) error {
	query := `
		UPDATE packages
		SET delivery_otp = NULL,
			delivery_confirmed = TRUE,
			updated_at = NOW()
		WHERE tracking_number = $1
		  AND delivery_otp = $2
		  AND status <> 'delivered'
	`

	result, err := r.querier.Exec(ctx, query, trackingNumber, code)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository consume otp error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return confirmation.ErrInvalidCode
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context, userID *string) (map[entities.PackageStatus]int64, error) {
	builder := qb.
		Select("status", "COUNT(*)").
		From("packages").
		GroupBy("status")

	// опциональный срез по пользователю
	if userID != nil {
		builder = builder.Where(sq.Eq{"user_id": *userID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.PackageStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository count scan error: %w", err)
		}
		counts[entities.PackageStatus(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository count rows error: %w", err)
	}

	return counts, nil
}

func scanTargets(p *PackageDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.TrackingNumber,
		&p.UserID,
		&p.SenderName,
		&p.SenderPhone,
		&p.SenderEmail,
		&p.SenderAddress,
		&p.SenderCity,
		&p.SenderPincode,
		&p.ReceiverName,
		&p.ReceiverPhone,
		&p.ReceiverEmail,
		&p.ReceiverAddress,
		&p.ReceiverCity,
		&p.ReceiverPincode,
		&p.PackageType,
		&p.Weight,
		&p.Description,
		&p.Amount,
		&p.Paid,
		&p.Status,
		&p.DeliveryOtp,
		&p.DeliveryConfirmed,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.DeliveredAt,
	}
}

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/dbmetrics"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/psqlbuilder"
)

// Repository read-only репозиторий каталога (барбершопы, барберы, услуги)
// Каталог ведется стороной управления барбершопами; ядро бронирований
// читает отсюда расписания, имена и цены
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBarber получает барбера по ID
func (r *Repository) GetBarber(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barbershop_id",
		"full_name",
		"work_schedule",
		"is_active",
	).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.BarbershopID,
		&barber.FullName,
		&barber.WorkSchedule,
		&barber.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarber - scan barber: %v", ErrScanRow, err)
	}

	return &barber, nil
}

// GetBarbershop получает барбершоп по ID
func (r *Repository) GetBarbershop(ctx context.Context, id int64) (*domain.Barbershop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"is_active",
	).
		From("barbershops").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBarbershop - build select query: %v", ErrBuildQuery, err)
	}

	var shop domain.Barbershop
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shop.ID,
		&shop.OwnerID,
		&shop.Name,
		&shop.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarbershopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBarbershop - scan barbershop: %v", ErrScanRow, err)
	}

	return &shop, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barbershop_id",
		"name",
		"price",
		"duration_minutes",
		"is_active",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BarbershopID,
		&service.Name,
		&service.Price,
		&service.DurationMinutes,
		&service.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	bookingModel "ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/room/model"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
)

type AvailabilityQuery struct {
	HotelID  string
	CheckIn  string
	CheckOut string
	Capacity string
	View     string
	MaxPrice float64
}

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetAvailable(ctx context.Context, query AvailabilityQuery) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAvailable returns rooms free for the whole half-open interval [check_in, check_out).
// The overlap predicate must stay in sync with the exclusion constraint on bookings,
// so availability reads are never served from cache.
func (repo *repositoryImpl) GetAvailable(ctx context.Context, availQuery AvailabilityQuery) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAvailable")
	defer scope.End()

	args := map[string]any{
		"check_in":  availQuery.CheckIn,
		"check_out": availQuery.CheckOut,
	}

	query := fmt.Sprintf(`SELECT %[1]s.* FROM %[1]s
		WHERE NOT EXISTS (
			SELECT 1 FROM %[2]s
			WHERE %[2]s.room_id = %[1]s.id
			AND NOT %[2]s.is_archived
			AND %[2]s.check_in_date < :check_out
			AND %[2]s.check_out_date > :check_in
		)`, model.TableName, bookingModel.TableName)

	if availQuery.HotelID != "" {
		query += " AND " + model.TableName + ".hotel_id = :hotel_id"
		args["hotel_id"] = availQuery.HotelID
	}

	if availQuery.Capacity != "" {
		query += " AND " + model.TableName + ".capacity = :capacity"
		args["capacity"] = availQuery.Capacity
	}

	if availQuery.View != "" {
		query += " AND " + model.TableName + ".view = :view"
		args["view"] = availQuery.View
	}

	if availQuery.MaxPrice > 0 {
		query += " AND " + model.TableName + ".price <= :max_price"
		args["max_price"] = availQuery.MaxPrice
	}

	query += " ORDER BY " + model.TableName + ".price ASC"

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &rooms, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rooms, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return rooms, nil
}

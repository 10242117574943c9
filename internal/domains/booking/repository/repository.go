package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/internal/domains/booking/model"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/logger"
	gRepo "ehotel/shared/repository"
	"ehotel/shared/timezone"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error)
	MarkPaid(ctx context.Context, id, user string) (int64, error)
	CheckIn(ctx context.Context, id, employeeID, user string) (int64, error)
	CheckOut(ctx context.Context, id, user string) (int64, error)
	Archive(ctx context.Context, id, user string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert maps an exclusion constraint violation (overlapping stay on the same
// room) to a Conflict failure. The constraint is the single source of truth for
// interval overlap, so concurrent creates never need an advisory lock.
func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := repo.Repository.Insert(ctx, booking)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
	}

	return err // nolint:wrapcheck
}

// CountOverlapping counts active bookings of the room intersecting the
// half-open interval [checkIn, checkOut).
func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOverlapping")
	defer scope.End()

	query := fmt.Sprintf(`SELECT COUNT(%[1]s) FROM %[2]s
		WHERE %[3]s = :room_id
		AND NOT %[4]s
		AND %[5]s < :check_out
		AND %[6]s > :check_in`,
		model.FieldID, model.TableName, model.FieldRoomID, model.FieldIsArchived, model.FieldCheckInDate, model.FieldCheckOutDate)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"room_id":   roomID,
		"check_in":  checkIn,
		"check_out": checkOut,
	}

	var count int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &count, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return count, nil
}

// MarkPaid flips is_paid when the booking is still active. Returns the number
// of rows changed; zero means the guard rejected the transition.
func (repo *repositoryImpl) MarkPaid(ctx context.Context, id, user string) (int64, error) {
	set := fmt.Sprintf("%s = TRUE", model.FieldIsPaid)
	guard := fmt.Sprintf("NOT %s AND NOT %s", model.FieldIsPaid, model.FieldIsArchived)

	return repo.applyTransition(ctx, "MarkPaid", set, guard, map[string]any{"id": id, "user": user})
}

// CheckIn starts the stay. The employee is recorded only if none was set at
// creation; once set it never changes.
func (repo *repositoryImpl) CheckIn(ctx context.Context, id, employeeID, user string) (int64, error) {
	set := fmt.Sprintf("%s = TRUE, %s = COALESCE(%s, :employee_id)", model.FieldIsRenting, model.FieldEmployeeID, model.FieldEmployeeID)
	guard := fmt.Sprintf("NOT %s AND NOT %s AND NOT %s", model.FieldIsRenting, model.FieldIsCheckout, model.FieldIsArchived)

	return repo.applyTransition(ctx, "CheckIn", set, guard, map[string]any{"id": id, "employee_id": employeeID, "user": user})
}

// CheckOut ends the stay. Requires an active check-in.
func (repo *repositoryImpl) CheckOut(ctx context.Context, id, user string) (int64, error) {
	set := fmt.Sprintf("%s = TRUE", model.FieldIsCheckout)
	guard := fmt.Sprintf("%s AND NOT %s", model.FieldIsRenting, model.FieldIsCheckout)

	return repo.applyTransition(ctx, "CheckOut", set, guard, map[string]any{"id": id, "user": user})
}

// Archive soft-deletes a completed booking, releasing its interval from the
// exclusion constraint predicate.
func (repo *repositoryImpl) Archive(ctx context.Context, id, user string) (int64, error) {
	set := fmt.Sprintf("%s = TRUE", model.FieldIsArchived)
	guard := fmt.Sprintf("%s AND NOT %s", model.FieldIsCheckout, model.FieldIsArchived)

	return repo.applyTransition(ctx, "Archive", set, guard, map[string]any{"id": id, "user": user})
}

// applyTransition runs a single guarded UPDATE. The lifecycle predicate lives
// in the WHERE clause so concurrent callers race on the row, not in Go.
func (repo *repositoryImpl) applyTransition(ctx context.Context, name, set, guard string, args map[string]any) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking."+name)
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s, %s = :modified_at, %s = :user WHERE %s = :id AND %s",
		model.TableName, set, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, guard)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args["modified_at"] = timezone.Now()

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to apply booking transition (%s): %w", name, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (%s): %w", name, err)
	}

	return rows, nil
}

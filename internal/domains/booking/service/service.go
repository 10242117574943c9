package service

import (
	"context"
	"fmt"
	"time"

	"ehotel/config"
	"ehotel/infras/kafka"
	"ehotel/infras/otel"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/repository"
	customerModel "ehotel/internal/domains/customer/model"
	customerRepository "ehotel/internal/domains/customer/repository"
	employeeModel "ehotel/internal/domains/employee/model"
	employeeRepository "ehotel/internal/domains/employee/repository"
	roomModel "ehotel/internal/domains/room/model"
	roomRepository "ehotel/internal/domains/room/repository"
	"ehotel/shared"
	"ehotel/shared/cache"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	"ehotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking         = "booking:get"
	cacheBookingsByHotel    = "booking:hotel"
	cacheBookingsByCustomer = "booking:customer"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Availability(ctx context.Context, roomID, checkIn, checkOut string) (dto.RoomAvailabilityResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	MarkPaid(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id, employeeID string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Archive(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByCustomer(ctx context.Context, customerID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepository.Room
	customerRepo customerRepository.Customer
	employeeRepo employeeRepository.Employee
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	customerRepo customerRepository.Customer,
	employeeRepo employeeRepository.Employee,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

// Create allocates a stay on the half-open interval [check_in, check_out).
// Overlap safety is enforced by the exclusion constraint at insert time, never
// by a check-then-act sequence in Go.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStayInterval(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	customerExist, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer existence")

		return res, fmt.Errorf("failed to check customer existence: %w", err)
	}

	if !customerExist {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if req.EmployeeID != constant.Empty {
		if err = s.validateEmployee(ctx, req.EmployeeID, room.HotelID); err != nil {
			return res, err
		}
	}

	booking := req.ToModel(user, room.HotelID, checkIn, checkOut)
	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, err // nolint:wrapcheck
	}

	created, err := s.getBooking(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	s.afterMutation(ctx, created, model.EventCreated)

	res.FromModel(created)

	return res, nil
}

// Availability reports whether the room is free for the whole interval. The
// answer is advisory: the exclusion constraint remains the arbiter at insert.
// Never served from cache.
func (s *serviceImpl) Availability(ctx context.Context, roomID, checkInStr, checkOutStr string) (res dto.RoomAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := parseStayInterval(checkInStr, checkOutStr)
	if err != nil {
		return res, err
	}

	roomExist, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !roomExist {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlapping, err := s.repo.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	res = dto.RoomAvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkInStr,
		CheckOut:  checkOutStr,
		Available: overlapping == 0,
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// MarkPaid flips the payment flag. Paying an already-paid booking is a no-op,
// not an error.
func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkBookingPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rows, err := s.repo.MarkPaid(ctx, id, user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if rows == 0 {
		if booking.IsArchived {
			return res, failure.InvalidState("booking is archived") // nolint:wrapcheck
		}

		// Already paid: idempotent, return the current state.
		res.FromModel(booking)

		return res, nil
	}

	s.afterMutation(ctx, booking, model.EventPaid)

	res.FromModel(booking)

	return res, nil
}

// CheckIn starts the stay and pins the handling employee. The employee set at
// creation (in-person flow) wins; this call only fills a NULL employee_id.
func (s *serviceImpl) CheckIn(ctx context.Context, id, employeeID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckInBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.validateEmployee(ctx, employeeID, current.HotelID); err != nil {
		return res, err
	}

	rows, err := s.repo.CheckIn(ctx, id, employeeID, user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if rows == 0 {
		switch {
		case booking.IsArchived:
			return res, failure.InvalidState("booking is archived") // nolint:wrapcheck
		case booking.IsCheckout:
			return res, failure.InvalidState("booking is already checked out") // nolint:wrapcheck
		default:
			return res, failure.InvalidState("booking is already checked in") // nolint:wrapcheck
		}
	}

	s.afterMutation(ctx, booking, model.EventRented)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOutBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rows, err := s.repo.CheckOut(ctx, id, user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if rows == 0 {
		if booking.IsCheckout {
			return res, failure.InvalidState("booking is already checked out") // nolint:wrapcheck
		}

		return res, failure.InvalidState("cannot check out before check-in") // nolint:wrapcheck
	}

	s.afterMutation(ctx, booking, model.EventCheckedOut)

	res.FromModel(booking)

	return res, nil
}

// Archive soft-deletes a completed booking. The row stays for history, but its
// interval no longer blocks future bookings of the room.
func (s *serviceImpl) Archive(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ArchiveBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rows, err := s.repo.Archive(ctx, id, user)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if rows == 0 {
		if booking.IsArchived {
			return res, failure.InvalidState("booking is already archived") // nolint:wrapcheck
		}

		return res, failure.InvalidState("cannot archive before checkout") // nolint:wrapcheck
	}

	s.afterMutation(ctx, booking, model.EventArchived)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingsByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)

	return s.getAll(ctx, cacheBookingsByHotel, params, filter)
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, customerID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingsByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(customerID, model.FieldCustomerID, model.TableName)

	return s.getAll(ctx, cacheBookingsByCustomer, params, filter)
}

// getAll serves cached list projections. Read-committed staleness is fine
// here; the cache is invalidated on every booking mutation.
func (s *serviceImpl) getAll(ctx context.Context, cachePrefix string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	if params.SortBy == constant.Empty {
		params.SortBy = model.TableName + "." + model.FieldCheckInDate
	}

	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirDesc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefix, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) validateEmployee(ctx context.Context, employeeID, hotelID string) error {
	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return failure.NotFound("employee not found") // nolint:wrapcheck
	}

	if employee.HotelID != hotelID {
		return failure.BadRequestFromString("employee does not belong to the booked hotel") // nolint:wrapcheck
	}

	return nil
}

// afterMutation invalidates booking caches and publishes the lifecycle event.
// Both happen off the request path; losing an event does not fail the mutation.
func (s *serviceImpl) afterMutation(ctx context.Context, booking model.Booking, eventType string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheBookingsByHotel)
		shared.InvalidateCaches(c, s.cache, cacheBookingsByCustomer)

		event := model.BookingEvent{
			EventType:  eventType,
			BookingID:  booking.ID,
			RoomID:     booking.RoomID,
			HotelID:    booking.HotelID,
			CustomerID: booking.CustomerID,
			OccurredAt: timezone.Now().Format(time.RFC3339),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish booking event")
		}
	}()
}

func parseStayInterval(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.BookingDateFormat, checkInStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_in_date") // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.BookingDateFormat, checkOutStr)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid check_out_date") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, failure.BadRequestFromString("check_in_date must be before check_out_date") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

package service_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	kafkaMocks "ehotel/infras/kafka/mocks"
	"ehotel/infras/otel/mocks"
	bookingMocks "ehotel/internal/domains/booking/mocks"
	"ehotel/internal/domains/booking/model"
	"ehotel/internal/domains/booking/model/dto"
	"ehotel/internal/domains/booking/service"
	customerMocks "ehotel/internal/domains/customer/mocks"
	employeeMocks "ehotel/internal/domains/employee/mocks"
	employeeModel "ehotel/internal/domains/employee/model"
	roomMocks "ehotel/internal/domains/room/mocks"
	roomModel "ehotel/internal/domains/room/model"
	cacheMocks "ehotel/shared/cache/mocks"
	"ehotel/shared/constant"
	gDto "ehotel/shared/dto"
	"ehotel/shared/failure"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

const (
	testRoomID     = "5f1c8f6e-0a3b-4c6d-9e2f-1a2b3c4d5e6f"
	testHotelID    = "6a2d9f7e-1b4c-5d7e-0f3a-2b3c4d5e6f7a"
	testCustomerID = "7b3e0a8f-2c5d-6e8f-1a4b-3c4d5e6f7a8b"
	testEmployeeID = "8c4f1b9a-3d6e-7f9a-2b5c-4d5e6f7a8b9c"
	testBookingID  = "9d5a2c0b-4e7f-8a0b-3c6d-5e6f7a8b9c0d"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	room     *roomMocks.MockRoom
	customer *customerMocks.MockCustomer
	employee *employeeMocks.MockEmployee
	cache    *cacheMocks.MockRedisCache
	kafka    *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		room:     roomMocks.NewMockRoom(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
		employee: employeeMocks.NewMockEmployee(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}

	// Cache invalidation and event publishing run off the request path.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.BookingTopic = "booking-events"

	svc := service.New(m.repo, m.room, m.customer, m.employee, cfg, m.cache, mocks.NewOtel(), m.kafka)

	return svc, m
}

func testBooking(mutate func(*model.Booking)) model.Booking {
	booking := model.Booking{
		ID:           testBookingID,
		RoomID:       testRoomID,
		HotelID:      testHotelID,
		CustomerID:   testCustomerID,
		BookingDate:  timezone.Now(),
		CheckInDate:  time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC),
		TotalCost:    240,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	if mutate != nil {
		mutate(&booking)
	}

	return booking
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	room := roomModel.Room{ID: testRoomID, HotelID: testHotelID}
	employee := employeeModel.Employee{ID: testEmployeeID, HotelID: testHotelID}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful online booking",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(nil), nil)
			},
		},
		{
			name: "successful in-person booking",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				EmployeeID: testEmployeeID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.employee.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.EmployeeID = sql.NullString{String: testEmployeeID, Valid: true}
				}), nil)
			},
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				CheckIn:    "2030-01-12",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "customer not found",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "employee from another hotel",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				EmployeeID: testEmployeeID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.employee.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employeeModel.Employee{
					ID:      testEmployeeID,
					HotelID: "another-hotel",
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlapping stay rejected by the exclusion constraint",
			req: dto.CreateBookingRequest{
				RoomID:     testRoomID,
				CustomerID: testCustomerID,
				CheckIn:    "2030-01-10",
				CheckOut:   "2030-01-12",
				TotalCost:  240,
			},
			setupMock: func() {
				m.room.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
				m.customer.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict("room is already booked for the requested dates"))
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testBookingID, res.ID)
				assert.False(t, res.IsPaid)
				assert.False(t, res.IsRenting)
				assert.False(t, res.IsCheckout)
				assert.False(t, res.IsArchived)
			}
		})
	}
}

func TestBookingService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name          string
		checkIn       string
		checkOut      string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantAvailable bool
	}{
		{
			name:     "room free for the whole interval",
			checkIn:  "2030-01-10",
			checkOut: "2030-01-12",
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().CountOverlapping(gomock.Any(), testRoomID, gomock.Any(), gomock.Any()).Return(0, nil)
			},
			wantAvailable: true,
		},
		{
			name:     "room occupied",
			checkIn:  "2030-01-10",
			checkOut: "2030-01-12",
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.repo.EXPECT().CountOverlapping(gomock.Any(), testRoomID, gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantAvailable: false,
		},
		{
			name:      "malformed dates",
			checkIn:   "10-01-2030",
			checkOut:  "2030-01-12",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:     "room not found",
			checkIn:  "2030-01-10",
			checkOut: "2030-01-12",
			setupMock: func() {
				m.room.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Availability(context.Background(), testRoomID, tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, res.Available)
				assert.Equal(t, testRoomID, res.RoomID)
			}
		})
	}
}

func TestBookingService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "payment recorded",
			setupMock: func() {
				m.repo.EXPECT().MarkPaid(gomock.Any(), testBookingID, "test-user").Return(int64(1), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsPaid = true
				}), nil)
			},
		},
		{
			name: "paying twice is a no-op",
			setupMock: func() {
				m.repo.EXPECT().MarkPaid(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsPaid = true
				}), nil)
			},
		},
		{
			name: "archived booking cannot be paid",
			setupMock: func() {
				m.repo.EXPECT().MarkPaid(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsPaid = true
					b.IsRenting = true
					b.IsCheckout = true
					b.IsArchived = true
				}), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown booking",
			setupMock: func() {
				m.repo.EXPECT().MarkPaid(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.MarkPaid(ctx, testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.IsPaid)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	employee := employeeModel.Employee{ID: testEmployeeID, HotelID: testHotelID}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "stay started",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(nil), nil)
				m.employee.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				m.repo.EXPECT().CheckIn(gomock.Any(), testBookingID, testEmployeeID, "test-user").Return(int64(1), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
					b.EmployeeID = sql.NullString{String: testEmployeeID, Valid: true}
				}), nil)
			},
		},
		{
			name: "already checked in",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
				}), nil)
				m.employee.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				m.repo.EXPECT().CheckIn(gomock.Any(), testBookingID, testEmployeeID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
				}), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "employee from another hotel",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(nil), nil)
				m.employee.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employeeModel.Employee{
					ID:      testEmployeeID,
					HotelID: "another-hotel",
				}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown booking",
			setupMock: func() {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.CheckIn(ctx, testBookingID, testEmployeeID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.IsRenting)
				assert.Equal(t, testEmployeeID, res.EmployeeID)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "stay ended",
			setupMock: func() {
				m.repo.EXPECT().CheckOut(gomock.Any(), testBookingID, "test-user").Return(int64(1), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
					b.IsCheckout = true
				}), nil)
			},
		},
		{
			name: "checkout before check-in",
			setupMock: func() {
				m.repo.EXPECT().CheckOut(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(nil), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "already checked out",
			setupMock: func() {
				m.repo.EXPECT().CheckOut(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
					b.IsCheckout = true
				}), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.CheckOut(ctx, testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.IsCheckout)
			}
		})
	}
}

func TestBookingService_Archive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "completed booking archived",
			setupMock: func() {
				m.repo.EXPECT().Archive(gomock.Any(), testBookingID, "test-user").Return(int64(1), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
					b.IsCheckout = true
					b.IsArchived = true
				}), nil)
			},
		},
		{
			name: "archive before checkout",
			setupMock: func() {
				m.repo.EXPECT().Archive(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
				}), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "already archived",
			setupMock: func() {
				m.repo.EXPECT().Archive(gomock.Any(), testBookingID, "test-user").Return(int64(0), nil)
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(func(b *model.Booking) {
					b.IsRenting = true
					b.IsCheckout = true
					b.IsArchived = true
				}), nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.Archive(ctx, testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.IsArchived)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss, read from database",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(testBooking(nil), nil)
			},
			wantID: testBookingID,
		},
		{
			name: "unknown booking",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), testBookingID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}

func TestBookingService_GetByHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss, read from database",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{testBooking(nil)}, nil)
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func() {
				m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			params := gDto.QueryParams{Page: 1, Limit: 10}
			res, err := svc.GetByHotel(context.Background(), testHotelID, params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
			}
		})
	}
}

func TestBookingService_GetByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			testBooking(nil),
			testBooking(func(b *model.Booking) { b.ID = "another-booking" }),
		}, nil)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	res, err := svc.GetByCustomer(context.Background(), testCustomerID, params)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ehotel/config"
	"ehotel/infras/otel/mocks"
	s3Mocks "ehotel/infras/s3/mocks"
	hotelMocks "ehotel/internal/domains/hotel/mocks"
	roomMocks "ehotel/internal/domains/room/mocks"
	"ehotel/internal/domains/room/model"
	"ehotel/internal/domains/room/model/dto"
	"ehotel/internal/domains/room/service"
	cacheMocks "ehotel/shared/cache/mocks"
	"ehotel/shared/constant"
	"ehotel/shared/failure"
)

const (
	testRoomID  = "5f1c8f6e-0a3b-4c6d-9e2f-1a2b3c4d5e6f"
	testHotelID = "6a2d9f7e-1b4c-5d7e-0f3a-2b3c4d5e6f7a"
)

func newRoomService(ctrl *gomock.Controller) (service.Room, *roomMocks.MockRoom, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockHotelRepo, cfg, mockCache, mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockHotelRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHotelRepo, _ := newRoomService(ctrl)

	req := dto.CreateRoomRequest{
		HotelID:    testHotelID,
		RoomNumber: "101",
		Price:      120,
		Capacity:   model.CapacityDouble,
		View:       model.ViewSea,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "hotel does not exist",
			setupMock: func() {
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockHotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testHotelID, res.HotelID)
				assert.Equal(t, "101", res.RoomNumber)
			}
		})
	}
}

func TestRoomService_GetAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _ := newRoomService(ctrl)

	rooms := []model.Room{
		{ID: testRoomID, HotelID: testHotelID, RoomNumber: "101", Price: 120},
	}

	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantRooms int
	}{
		{
			name: "rooms free for the interval",
			req: dto.AvailabilityRequest{
				CheckIn:  "2030-01-10",
				CheckOut: "2030-01-12",
			},
			setupMock: func() {
				mockRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any()).Return(rooms, nil)
			},
			wantRooms: 1,
		},
		{
			name: "no rooms free",
			req: dto.AvailabilityRequest{
				CheckIn:  "2030-01-10",
				CheckOut: "2030-01-12",
				HotelID:  testHotelID,
			},
			setupMock: func() {
				mockRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any()).Return([]model.Room{}, nil)
			},
			wantRooms: 0,
		},
		{
			name: "malformed check_in",
			req: dto.AvailabilityRequest{
				CheckIn:  "10/01/2030",
				CheckOut: "2030-01-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check_out not after check_in",
			req: dto.AvailabilityRequest{
				CheckIn:  "2030-01-12",
				CheckOut: "2030-01-12",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.AvailabilityRequest{
				CheckIn:  "2030-01-10",
				CheckOut: "2030-01-12",
			},
			setupMock: func() {
				mockRepo.EXPECT().GetAvailable(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAvailable(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Rooms, tt.wantRooms)
				assert.Equal(t, tt.req.CheckIn, res.CheckIn)
				assert.Equal(t, tt.req.CheckOut, res.CheckOut)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newRoomService(ctrl)

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
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss, read from database",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: testRoomID}, nil)
			},
			wantID: testRoomID,
		},
		{
			name: "unknown room",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), testRoomID)

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

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rice-shop/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Submit(ctx context.Context, req *model.OrderRequest, langHint string) (*model.OrderSubmitResponse, error) {
	args := m.Called(ctx, req, langHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderSubmitResponse), args.Error(1)
}

func (m *MockOrderService) Confirm(ctx context.Context, req *model.ConfirmOrderRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockOrderService) ResendOtp(ctx context.Context, req *model.ResendOtpRequest, langHint string) error {
	args := m.Called(ctx, req, langHint)
	return args.Error(0)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func TestOrderHandler_Create_Success(t *testing.T) {
	logger := zerolog.Nop()

	orderID := uuid.New()
	mockService := new(MockOrderService)
	mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.OrderRequest"), "my").
		Return(&model.OrderSubmitResponse{OrderID: orderID, Message: "OTP sent to email"}, nil)

	handler := NewOrderHandler(mockService, logger)

	body := `{"name":"Aung Aung","email":"aung@example.com","address":"Yangon","cart":[{"productId":"` + uuid.NewString() + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
	req.Header.Set("X-User-Language", "my")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp model.OrderSubmitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, orderID, resp.OrderID)
	assert.Equal(t, "OTP sent to email", resp.Message)

	mockService.AssertExpectations(t)
}

func TestOrderHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewOrderHandler(new(MockOrderService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Confirm_StatusMapping(t *testing.T) {
	orderID := uuid.New()
	body := `{"orderId":"` + orderID.String() + `","email":"aung@example.com","code":"123456"}`

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			serviceErr:     nil,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid otp",
			serviceErr:     model.ErrInvalidOtp,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid or expired OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			mockService.On("Confirm", mock.Anything, mock.AnythingOfType("*model.ConfirmOrderRequest")).
				Return(tt.serviceErr)

			handler := NewOrderHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/orders/confirm", bytes.NewBufferString(body))
			rec := httptest.NewRecorder()

			handler.Confirm(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestOrderHandler_ResendOtp_RateLimited(t *testing.T) {
	orderID := uuid.New()
	body := `{"orderId":"` + orderID.String() + `","email":"aung@example.com"}`

	mockService := new(MockOrderService)
	mockService.On("ResendOtp", mock.Anything, mock.AnythingOfType("*model.ResendOtpRequest"), "").
		Return(model.ErrOtpRateLimited)

	handler := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/resend-otp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.ResendOtp(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestOrderHandler_UpdateStatus_Success(t *testing.T) {
	orderID := uuid.New()
	order := &model.Order{ID: orderID, Status: model.OrderStatusDelivered, Confirmed: true}

	mockService := new(MockOrderService)
	mockService.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusDelivered).Return(order, nil)

	handler := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/status", bytes.NewBufferString(`{"status":"delivered"}`))
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	handler.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp model.UpdateOrderStatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Order status updated", resp.Message)
	require.NotNil(t, resp.Order)
	assert.Equal(t, model.OrderStatusDelivered, resp.Order.Status)
}

func TestOrderHandler_UpdateStatus_NotFound(t *testing.T) {
	orderID := uuid.New()

	mockService := new(MockOrderService)
	mockService.On("UpdateStatus", mock.Anything, orderID, model.OrderStatusDelivered).
		Return(nil, model.ErrOrderNotFound)

	handler := NewOrderHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/orders/"+orderID.String()+"/status", bytes.NewBufferString(`{"status":"delivered"}`))
	req.SetPathValue("id", orderID.String())
	rec := httptest.NewRecorder()

	handler.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_UpdateStatus_InvalidID(t *testing.T) {
	handler := NewOrderHandler(new(MockOrderService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/orders/not-a-uuid/status", bytes.NewBufferString(`{"status":"delivered"}`))
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	handler.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

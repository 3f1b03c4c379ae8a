package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/mpesa"
)

type paymentMocks struct {
	users         *MockPaymentUserReader
	subscriptions *MockSubscriptionWriter
	payments      *MockPaymentWriter
	paymentReader *MockPaymentReader
	gateway       *MockGateway
	kafkaWriter   *MockKafkaWriter
}

func newPaymentService(ctrl *gomock.Controller) (*PaymentService, paymentMocks) {
	m := paymentMocks{
		users:         NewMockPaymentUserReader(ctrl),
		subscriptions: NewMockSubscriptionWriter(ctrl),
		payments:      NewMockPaymentWriter(ctrl),
		paymentReader: NewMockPaymentReader(ctrl),
		gateway:       NewMockGateway(ctrl),
		kafkaWriter:   NewMockKafkaWriter(ctrl),
	}
	svc := NewPaymentService(m.users, m.subscriptions, m.payments, m.paymentReader, m.gateway, m.kafkaWriter)
	return svc, m
}

func TestPaymentServiceSubscribe(t *testing.T) {
	ctx := context.Background()

	user := &models.UserDB{ID: 1, Username: "john", Email: "john@example.com"}
	pendingPayment := &models.PaymentDB{
		ID:          10,
		UserID:      1,
		Amount:      500,
		PhoneNumber: "254712345678",
		Status:      models.PaymentStatusPending,
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.users.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)
		m.subscriptions.EXPECT().Save(ctx, int64(1), float64(500)).Return(&models.SubscriptionDB{ID: 1}, nil)
		m.payments.EXPECT().Save(ctx, int64(1), float64(500), "254712345678").Return(pendingPayment, nil)
		m.gateway.EXPECT().STKPush(ctx, float64(500), "254712345678").Return(&mpesa.STKPushResponse{
			CheckoutRequestID: "ws_CO_123",
			ResponseCode:      "0",
		}, nil)
		m.payments.EXPECT().MarkInitiated(ctx, int64(10), "ws_CO_123").Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		payment, err := svc.Subscribe(ctx, 1, 500, "254712345678")

		assert.NoError(t, err)
		assert.Equal(t, models.PaymentStatusInitiated, payment.Status)
		assert.Equal(t, "ws_CO_123", payment.TransactionID.String)
		assert.True(t, payment.TransactionID.Valid)
	})

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newPaymentService(ctrl)

		_, err := svc.Subscribe(ctx, 1, 0, "254712345678")
		assert.ErrorIs(t, err, ErrMissingAmount)
	})

	t.Run("missing phone number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newPaymentService(ctrl)

		_, err := svc.Subscribe(ctx, 1, 500, "")
		assert.ErrorIs(t, err, ErrMissingPhoneNumber)
	})

	t.Run("unknown user writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.users.EXPECT().GetByID(ctx, int64(42)).Return(nil, nil)

		_, err := svc.Subscribe(ctx, 42, 500, "254712345678")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("gateway unreachable marks payment failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.users.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)
		m.subscriptions.EXPECT().Save(ctx, int64(1), float64(500)).Return(&models.SubscriptionDB{ID: 1}, nil)
		m.payments.EXPECT().Save(ctx, int64(1), float64(500), "254712345678").Return(pendingPayment, nil)
		m.gateway.EXPECT().STKPush(ctx, float64(500), "254712345678").Return(nil, mpesa.ErrGatewayUnavailable)
		m.payments.EXPECT().MarkFailed(ctx, int64(10), "gateway unreachable").Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		_, err := svc.Subscribe(ctx, 1, 500, "254712345678")
		assert.ErrorIs(t, err, mpesa.ErrGatewayUnavailable)
	})

	t.Run("gateway rejection marks payment failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.users.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)
		m.subscriptions.EXPECT().Save(ctx, int64(1), float64(500)).Return(&models.SubscriptionDB{ID: 1}, nil)
		m.payments.EXPECT().Save(ctx, int64(1), float64(500), "254712345678").Return(pendingPayment, nil)
		m.gateway.EXPECT().STKPush(ctx, float64(500), "254712345678").Return(&mpesa.STKPushResponse{
			ResponseCode:        "1",
			ResponseDescription: "Invalid Access Token",
		}, nil)
		m.payments.EXPECT().MarkFailed(ctx, int64(10), "Invalid Access Token").Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		_, err := svc.Subscribe(ctx, 1, 500, "254712345678")
		assert.ErrorIs(t, err, ErrPaymentRejected)
	})
}

func TestPaymentServiceHandleCallback(t *testing.T) {
	ctx := context.Background()

	initiated := &models.PaymentDB{
		ID:     10,
		UserID: 1,
		Amount: 500,
		Status: models.PaymentStatusInitiated,
	}

	successCallback := func() *mpesa.StkCallback {
		return &mpesa.StkCallback{
			CheckoutRequestID: "ws_CO_123",
			ResultCode:        0,
			ResultDesc:        "The service request is processed successfully.",
			CallbackMetadata: &mpesa.CallbackMetadata{
				Item: []mpesa.MetadataItem{
					{Name: "Amount", Value: 500.0},
					{Name: "MpesaReceiptNumber", Value: "NLJ7RT61SV"},
					{Name: "TransactionDate", Value: 20250617104020.0},
					{Name: "PhoneNumber", Value: 254712345678.0},
				},
			},
		}
	}

	t.Run("completes payment with receipt and gateway time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.paymentReader.EXPECT().GetByTransactionID(ctx, "ws_CO_123").Return(initiated, nil)
		m.payments.EXPECT().
			MarkCompleted(ctx, int64(10), "NLJ7RT61SV", "The service request is processed successfully.", gomock.Any()).
			Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		err := svc.HandleCallback(ctx, successCallback())
		assert.NoError(t, err)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.paymentReader.EXPECT().GetByTransactionID(ctx, "ws_CO_123").Return(nil, nil)

		err := svc.HandleCallback(ctx, successCallback())
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("declined payment marked failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		declined := &mpesa.StkCallback{
			CheckoutRequestID: "ws_CO_123",
			ResultCode:        1032,
			ResultDesc:        "Request cancelled by user",
		}

		m.paymentReader.EXPECT().GetByTransactionID(ctx, "ws_CO_123").Return(initiated, nil)
		m.payments.EXPECT().MarkFailed(ctx, int64(10), "Request cancelled by user").Return(nil)
		m.kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

		err := svc.HandleCallback(ctx, declined)
		assert.ErrorIs(t, err, ErrPaymentDeclined)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPaymentService(ctrl)

		m.paymentReader.EXPECT().
			GetByTransactionID(ctx, "ws_CO_123").
			Return(nil, errors.New("database failure"))

		err := svc.HandleCallback(ctx, successCallback())
		assert.EqualError(t, err, "database failure")
	})
}

func TestPaymentServicePaymentSummary(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPaymentService(ctrl)

	m.paymentReader.EXPECT().SumAmounts(ctx).Return(1500.0, nil)

	total, err := svc.PaymentSummary(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, total)
}

func TestPaymentServiceWithoutKafkaWriter(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockPaymentUserReader(ctrl)
	subscriptions := NewMockSubscriptionWriter(ctrl)
	payments := NewMockPaymentWriter(ctrl)
	paymentReader := NewMockPaymentReader(ctrl)
	gateway := NewMockGateway(ctrl)

	// nil writer: events are skipped, the workflow is unaffected
	svc := NewPaymentService(users, subscriptions, payments, paymentReader, gateway, nil)

	user := &models.UserDB{ID: 1}
	pendingPayment := &models.PaymentDB{ID: 10, UserID: 1, Amount: 500, Status: models.PaymentStatusPending}

	users.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)
	subscriptions.EXPECT().Save(ctx, int64(1), float64(500)).Return(&models.SubscriptionDB{ID: 1}, nil)
	payments.EXPECT().Save(ctx, int64(1), float64(500), "254712345678").Return(pendingPayment, nil)
	gateway.EXPECT().STKPush(ctx, float64(500), "254712345678").Return(&mpesa.STKPushResponse{
		CheckoutRequestID: "ws_CO_123",
		ResponseCode:      "0",
	}, nil)
	payments.EXPECT().MarkInitiated(ctx, int64(10), "ws_CO_123").Return(nil)

	payment, err := svc.Subscribe(ctx, 1, 500, "254712345678")
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusInitiated, payment.Status)
}

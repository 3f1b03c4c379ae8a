package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/imraac/LMS-backend/internal/logger"
	"github.com/imraac/LMS-backend/internal/models"
	"github.com/imraac/LMS-backend/internal/mpesa"
)

// Error variables
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingAmount      = errors.New("amount is required")
	ErrMissingPhoneNumber = errors.New("phone number is required")
	ErrPaymentNotFound    = errors.New("payment record not found")
	ErrPaymentRejected    = errors.New("payment initiation rejected by gateway")
	ErrPaymentDeclined    = errors.New("payment failed")
)

// PaymentUserReader resolves the subscribing user.
type PaymentUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// SubscriptionWriter defines write operations for subscriptions.
type SubscriptionWriter interface {
	Save(ctx context.Context, userID int64, amount float64) (*models.SubscriptionDB, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	Save(ctx context.Context, userID int64, amount float64, phoneNumber string) (*models.PaymentDB, error)
	MarkInitiated(ctx context.Context, paymentID int64, transactionID string) error
	MarkFailed(ctx context.Context, paymentID int64, resultDesc string) error
	MarkCompleted(ctx context.Context, paymentID int64, receiptNumber, resultDesc string, transactionTime time.Time) error
}

// PaymentReader defines read-only operations for payments.
type PaymentReader interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*models.PaymentDB, error)
	SumAmounts(ctx context.Context) (float64, error)
}

// Gateway initiates STK push requests against the payment provider.
type Gateway interface {
	STKPush(ctx context.Context, amount float64, phoneNumber string) (*mpesa.STKPushResponse, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PaymentService runs the subscription-and-payment workflow and publishes
// payment status transitions to Kafka.
type PaymentService struct {
	users         PaymentUserReader
	subscriptions SubscriptionWriter
	payments      PaymentWriter
	paymentReader PaymentReader
	gateway       Gateway
	kafkaWriter   KafkaWriter
}

// NewPaymentService creates a new PaymentService. kafkaWriter may be nil,
// in which case status events are not published.
func NewPaymentService(
	users PaymentUserReader,
	subscriptions SubscriptionWriter,
	payments PaymentWriter,
	paymentReader PaymentReader,
	gateway Gateway,
	kafkaWriter KafkaWriter,
) *PaymentService {
	return &PaymentService{
		users:         users,
		subscriptions: subscriptions,
		payments:      payments,
		paymentReader: paymentReader,
		gateway:       gateway,
		kafkaWriter:   kafkaWriter,
	}
}

// publishEvent publishes a payment status transition to Kafka.
func (svc *PaymentService) publishEvent(ctx context.Context, event models.PaymentEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "payment_id", event.PaymentID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal payment event for Kafka", "payment_id", event.PaymentID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PaymentID, 10)),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish payment event to Kafka", "payment_id", event.PaymentID, "error", err)
	} else {
		logger.Log.Infow("Payment event published to Kafka", "payment_id", event.PaymentID, "status", event.Status)
	}
}

func (svc *PaymentService) event(payment *models.PaymentDB, status, transactionID string) models.PaymentEvent {
	return models.PaymentEvent{
		PaymentID:     payment.ID,
		UserID:        payment.UserID,
		Amount:        payment.Amount,
		Status:        status,
		TransactionID: transactionID,
		Timestamp:     time.Now().Unix(),
	}
}

// Subscribe creates a subscription and a pending payment for the user, then
// initiates the STK push. The subscription and every payment status write
// happen inside the caller's transaction scope, so a rejected or unreachable
// gateway leaves a terminal failed payment rather than a pending orphan.
func (svc *PaymentService) Subscribe(ctx context.Context, userID int64, amount float64, phoneNumber string) (*models.PaymentDB, error) {
	if amount <= 0 {
		return nil, ErrMissingAmount
	}
	if phoneNumber == "" {
		return nil, ErrMissingPhoneNumber
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up subscribing user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if _, err := svc.subscriptions.Save(ctx, userID, amount); err != nil {
		logger.Log.Errorw("failed to save subscription", "userID", userID, "err", err)
		return nil, err
	}

	payment, err := svc.payments.Save(ctx, userID, amount, phoneNumber)
	if err != nil {
		logger.Log.Errorw("failed to save payment", "userID", userID, "err", err)
		return nil, err
	}

	pushResp, err := svc.gateway.STKPush(ctx, amount, phoneNumber)
	if err != nil {
		logger.Log.Errorw("gateway call failed", "paymentID", payment.ID, "err", err)
		if markErr := svc.payments.MarkFailed(ctx, payment.ID, "gateway unreachable"); markErr != nil {
			logger.Log.Errorw("failed to mark payment failed", "paymentID", payment.ID, "err", markErr)
		}
		svc.publishEvent(ctx, svc.event(payment, models.PaymentStatusFailed, ""))
		return nil, err
	}

	if !pushResp.Accepted() {
		logger.Log.Warnw("gateway rejected push request",
			"paymentID", payment.ID,
			"response_code", pushResp.ResponseCode,
			"description", pushResp.ResponseDescription,
		)
		if markErr := svc.payments.MarkFailed(ctx, payment.ID, pushResp.ResponseDescription); markErr != nil {
			logger.Log.Errorw("failed to mark payment failed", "paymentID", payment.ID, "err", markErr)
		}
		svc.publishEvent(ctx, svc.event(payment, models.PaymentStatusFailed, ""))
		return nil, ErrPaymentRejected
	}

	if err := svc.payments.MarkInitiated(ctx, payment.ID, pushResp.CheckoutRequestID); err != nil {
		logger.Log.Errorw("failed to mark payment initiated", "paymentID", payment.ID, "err", err)
		return nil, err
	}

	payment.Status = models.PaymentStatusInitiated
	payment.TransactionID.String = pushResp.CheckoutRequestID
	payment.TransactionID.Valid = true
	svc.publishEvent(ctx, svc.event(payment, models.PaymentStatusInitiated, pushResp.CheckoutRequestID))

	return payment, nil
}

// HandleCallback applies an asynchronous gateway result to the payment it
// correlates with. Returns ErrPaymentNotFound when no payment carries the
// callback's correlation id and ErrPaymentDeclined when the gateway reports
// a non-success result code.
func (svc *PaymentService) HandleCallback(ctx context.Context, callback *mpesa.StkCallback) error {
	payment, err := svc.paymentReader.GetByTransactionID(ctx, callback.CheckoutRequestID)
	if err != nil {
		logger.Log.Errorw("failed to look up payment for callback", "transactionID", callback.CheckoutRequestID, "err", err)
		return err
	}
	if payment == nil {
		logger.Log.Warnw("callback for unknown transaction", "transactionID", callback.CheckoutRequestID)
		return ErrPaymentNotFound
	}

	if !callback.Succeeded() {
		if err := svc.payments.MarkFailed(ctx, payment.ID, callback.ResultDesc); err != nil {
			logger.Log.Errorw("failed to mark payment failed", "paymentID", payment.ID, "err", err)
			return err
		}
		svc.publishEvent(ctx, svc.event(payment, models.PaymentStatusFailed, callback.CheckoutRequestID))
		return ErrPaymentDeclined
	}

	receipt, _ := callback.ReceiptNumber()
	transactionTime, ok := callback.TransactionDate()
	if !ok {
		transactionTime = time.Now().UTC()
	}

	if err := svc.payments.MarkCompleted(ctx, payment.ID, receipt, callback.ResultDesc, transactionTime); err != nil {
		logger.Log.Errorw("failed to mark payment completed", "paymentID", payment.ID, "err", err)
		return err
	}

	// The callback carries no course reference today; when it does, the
	// subscription row is where the linkage belongs.
	if courseID, ok := callback.CourseID(); ok {
		logger.Log.Infow("callback carried a course reference", "paymentID", payment.ID, "courseID", courseID)
	}

	svc.publishEvent(ctx, svc.event(payment, models.PaymentStatusCompleted, callback.CheckoutRequestID))
	return nil
}

// PaymentSummary returns the sum of all payment amounts regardless of status.
func (svc *PaymentService) PaymentSummary(ctx context.Context) (float64, error) {
	total, err := svc.paymentReader.SumAmounts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to sum payments", "err", err)
		return 0, err
	}
	return total, nil
}

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/attendance"
	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Marker interface {
	Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error)
}

var (
	retryBackoff    = 500 * time.Millisecond
	maxRetryBackoff = 30 * time.Second
)

// ConsumeMarkRequests marks attendance for every request on the topic until
// ctx is cancelled. Messages that can never succeed (bad JSON, unknown
// employee, invalid status) are committed and dropped. A storage failure
// blocks the partition: the same message is retried with backoff and
// nothing after it is fetched until it goes through.
func ConsumeMarkRequests(
	ctx context.Context,
	reader MessageReader,
	marker Marker,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance_mark")
	log.Info("attendance mark consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance mark consumer stopped")
				return
			}
			log.Error("fetch attendance mark message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceMarkRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode attendance mark event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		rid := requestID(msg)
		mctx := contextutil.WithSource(contextutil.WithRequestID(ctx, rid), contextutil.SourceConsumer)

		resp, err := markWithRetry(mctx, marker, attendance.MarkAttendanceRequest{
			EmployeeID:   event.EmployeeID,
			EmployeeCode: event.EmployeeCode,
			Date:         event.Date,
			Status:       event.Status,
			Notes:        event.Notes,
		}, log.With(zap.String("request_id", rid), zap.Int64("offset", msg.Offset)))
		if err != nil {
			if ctx.Err() != nil {
				log.Info("attendance mark consumer stopped",
					zap.Int64("uncommitted_offset", msg.Offset),
				)
				return
			}
			log.Warn("attendance mark request rejected",
				zap.String("request_id", rid),
				zap.String("employee_id", event.EmployeeID),
				zap.String("employee_code", event.EmployeeCode),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit attendance mark message failed", zap.Error(err))
			continue
		}

		log.Info("attendance marked from message",
			zap.String("request_id", rid),
			zap.String("record_id", resp.ID),
			zap.String("status", resp.Status),
		)
	}
}

// markWithRetry returns nil, a rejection, or ctx's error. Any other failure
// is retried with capped exponential backoff.
func markWithRetry(
	ctx context.Context,
	marker Marker,
	req attendance.MarkAttendanceRequest,
	log *zap.Logger,
) (attendance.AttendanceResponse, error) {
	wait := retryBackoff
	for attempt := 1; ; attempt++ {
		resp, err := marker.Mark(ctx, req)
		if err == nil || rejected(err) {
			return resp, err
		}
		if ctx.Err() != nil {
			return attendance.AttendanceResponse{}, ctx.Err()
		}

		log.Error("mark attendance failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return attendance.AttendanceResponse{}, ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, maxRetryBackoff)
	}
}

func requestID(msg kafkago.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "request_id" && len(h.Value) > 0 {
			return string(h.Value)
		}
	}
	return uuid.NewString()
}

// rejected reports whether err is a client error that redelivery cannot fix.
func rejected(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.HTTPStatus >= http.StatusBadRequest && appErr.HTTPStatus < http.StatusInternalServerError
}

package employee

import (
	"context"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
)

// publishLifecycle is best effort: the roster change is already persisted,
// so a broker failure is only logged.
func (s *service) publishLifecycle(ctx context.Context, eventType string, empl domain.Employee) {
	rid := contextutil.GetRequestID(ctx)
	event := events.EmployeeLifecycleEvent{
		EventType:    eventType,
		RequestID:    rid,
		EmployeeID:   empl.ID,
		EmployeeCode: empl.Code,
		OccurredAt:   s.now().UTC(),
	}

	err := s.publisher.Publish(ctx, kafka.Message{
		Topic:         events.EmployeeLifecycleTopic,
		Key:           empl.ID,
		EventType:     eventType,
		AggregateType: "employee",
		RequestID:     rid,
		Payload:       event,
	})
	if err != nil {
		s.logger.Error("publish employee event failed",
			zap.String("request_id", rid),
			zap.String("event_type", eventType),
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}
}


package app

import (
	"context"

	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka/consumer"
	"github.com/vivek068790/Employee-Register-App/internal/shared/connection"

	"go.uber.org/zap"
)

func (a *App) startConsumer(ctx context.Context) {
	logger := a.logger.Named("app.consumer")

	reader := connection.NewKafkaReader(a.cfg.Kafka, events.AttendanceMarkRequestedTopic)
	a.closers = append(a.closers, reader.Close)

	logger.Info("starting attendance mark consumer",
		zap.String("topic", events.AttendanceMarkRequestedTopic),
		zap.String("group_id", a.cfg.Kafka.GroupID),
	)
	a.goBackground(func() { consumer.ConsumeMarkRequests(ctx, reader, a.Attendance, logger) })
}

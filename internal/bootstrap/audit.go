package bootstrap

import "context"

// AuditLog is one operator-visible lifecycle or bulk event.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

const (
	AuditServerStarted  = "SERVER_STARTED"
	AuditServerShutdown = "SERVER_SHUTDOWN"
	AuditAutoAbsent     = "AUTO_ABSENT_APPLIED"
	AuditWorkerStopped  = "WORKER_STOPPED"
)

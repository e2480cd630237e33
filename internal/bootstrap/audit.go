package bootstrap

import "context"

// AuditLog captures operator-relevant lifecycle events (startup,
// shutdown, worker restarts), separate from request logging.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

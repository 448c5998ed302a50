package send_reminder

import "context"

type VisitService interface {
	SendReminder(ctx context.Context, visitID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

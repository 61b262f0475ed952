package view

import (
	"log/slog"

	"github.com/hrmpro/hrm-backend-go/internal/domain/view"
)

// LogSink logs each presented frame. The router keeps the latest frame for
// polling callers, so a headless deployment needs nothing more than this.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Present(frame view.Frame) {
	s.logger.Debug("frame presented", "view_id", frame.ViewID, "state", string(frame.State))
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/edhgrab"
)

// Ensure LoggingCardService implements edhgrab.CardService.
var _ edhgrab.CardService = (*LoggingCardService)(nil)

// LoggingCardService wraps a CardService with debug logging.
type LoggingCardService struct {
	next   edhgrab.CardService
	logger *slog.Logger
}

// NewLoggingCardService creates a new LoggingCardService.
func NewLoggingCardService(next edhgrab.CardService, logger *slog.Logger) *LoggingCardService {
	return &LoggingCardService{next: next, logger: logger}
}

// FindCardByName delegates to the wrapped service and logs the operation.
func (s *LoggingCardService) FindCardByName(ctx context.Context, name string) (details *edhgrab.CardDetails, err error) {
	defer func(begin time.Time) {
		s.logger.Info("card lookup",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCardByName(ctx, name)
}

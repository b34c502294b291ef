package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// logger bridges gorm's logging to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, msg string, args ...any) {
	l.Logger.Info().Msgf(msg, args...)
}

func (l *logger) Warn(_ context.Context, msg string, args ...any) {
	l.Logger.Warn().Msgf(msg, args...)
}

func (l *logger) Error(_ context.Context, msg string, args ...any) {
	l.Logger.Error().Msgf(msg, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := l.Logger.Debug()

	// Not finding a record is an expected outcome, everything else is not.
	// Trace runs before the error-rewriting callbacks, so both forms of the
	// not-found error show up here.
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, ErrResourceNotFound) {
		event = l.Logger.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("[GORM]")
}

package service

import (
	"context"

	"selfcare_portal/internal/utils"

	"go.uber.org/zap"
)

// SMSSender delivers reset codes to subscribers
type SMSSender interface {
	SendResetCode(ctx context.Context, phone, code string) error
}

// LogSMSSender writes the dispatch to the log instead of an SMS gateway.
// The code itself is logged only when revealCode is set.
type LogSMSSender struct {
	log        *zap.Logger
	revealCode bool
}

// NewLogSMSSender creates a logging sender
func NewLogSMSSender(log *zap.Logger, revealCode bool) *LogSMSSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSMSSender{log: log, revealCode: revealCode}
}

func (s *LogSMSSender) SendResetCode(_ context.Context, phone, code string) error {
	fields := []zap.Field{zap.String("phone", utils.FormatMaskedPhone(phone))}
	if s.revealCode {
		fields = append(fields, zap.String("code", code))
	}
	s.log.Info("reset code dispatched", fields...)
	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSMSSender(t *testing.T) {
	tests := []struct {
		name       string
		revealCode bool
	}{
		{"development reveals code", true},
		{"production hides code", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			sender := NewLogSMSSender(zap.New(core), tt.revealCode)

			require.NoError(t, sender.SendResetCode(context.Background(), testPhone, testCode))

			entries := logs.All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, "+7 ••• •••-45-67", fields["phone"])
			_, hasCode := fields["code"]
			assert.Equal(t, tt.revealCode, hasCode)
		})
	}
}

package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/ui/style"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		icon    string
	}{
		{domain.OutcomeWritten, style.Check},
		{domain.OutcomeUnchanged, style.Dot},
		{domain.OutcomeCached, style.Dot},
		{domain.OutcomeSkipped, style.Circle},
		{domain.OutcomeFailed, style.Cross},
		{domain.Outcome("other"), style.Tilde},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			icon, _ := style.Outcome(tt.outcome)
			assert.Equal(t, tt.icon, icon)
		})
	}
}

package natsstan

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/example/restorun-backoffice/internal/domain"
)

func TestShouldAck(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"handled", nil, true},
		{"validation", domain.ErrValidation, true},
		{"detailed validation", domain.Invalid("order %s: table_number must be positive", "o1"), true},
		{"decode failure", fmt.Errorf("%w: decode order: %w", domain.ErrValidation, errors.New("unexpected EOF")), true},
		{"storage failure", errors.Wrap(errors.New("connection refused"), "upsert order o1"), false},
		{"timeout", context.DeadlineExceeded, false},
		{"conflict", domain.ErrConflict, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldAck(tt.err))
		})
	}
}

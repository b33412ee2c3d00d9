package repo

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/example/restorun-backoffice/internal/domain"
)

func TestMapErr(t *testing.T) {
	other := errors.New("connection reset")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", errors.Wrap(pgx.ErrNoRows, "scan"), domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", Detail: "Key (username)=(anna) already exists."}, domain.ErrConflict},
		{"other pg error", &pgconn.PgError{Code: "23514"}, nil},
		{"passthrough", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.in)
			switch {
			case tt.in == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Same(t, tt.in, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}

func TestAffectedOne(t *testing.T) {
	assert.ErrorIs(t, affectedOne(pgconn.NewCommandTag("DELETE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, affectedOne(pgconn.NewCommandTag("DELETE 1"), nil))
	assert.ErrorIs(t, affectedOne(pgconn.CommandTag{}, pgx.ErrNoRows), domain.ErrNotFound)
}

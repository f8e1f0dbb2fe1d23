package predql

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// Test models for auto-mapping and compilation.

type User struct {
	CreatedAt time.Time
	Name      string
	Email     string `db:"email_address"`
	Password  string `db:"-"`
	ID        int
	secret    string
}

type Order struct {
	ShippedAt *time.Time
	Status    string
	ID        int64
	UserID    int
	Total     float64
}

type Session struct {
	Token     string
	SessionID uuid.UUID
	UserID    int
}

type Account struct {
	Number     string
	ExternalId string
	Balance    *big.Int
}

type Ledger struct {
	LedgerId big.Int
	LineId   int
}

type Tag struct {
	Slug  string
	Label string
}

type Audited struct {
	Version int
}

type Document struct {
	Audited
	Title      string
	DocumentID *uint
}

// newNullLogger returns a debug-level logger that records entries in memory.
func newNullLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

// newTestRegistry returns an auto-mapping registry whose log output is
// captured by the returned hook.
func newTestRegistry(t *testing.T, opts ...Option) (*Registry, *test.Hook) {
	t.Helper()
	logger, hook := newNullLogger()
	return NewRegistry(append([]Option{WithLogger(logger)}, opts...)...), hook
}

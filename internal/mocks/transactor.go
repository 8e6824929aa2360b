package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly, unless the expectation returns an error, in
// which case fn is never called.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

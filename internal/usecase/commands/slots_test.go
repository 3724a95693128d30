//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"camp-pricing/internal/domain/availability"
	"camp-pricing/internal/infra/memstore"
	"camp-pricing/internal/pkg/clock"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/commands"
	"camp-pricing/internal/usecase/ledger"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forgetLog struct {
	calls int
}

func (f *forgetLog) Forget(uuid.UUID, time.Time) {
	f.calls++
}

func TestSlotCommands(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	camp := uuid.New()
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	memo := &forgetLog{}
	l := ledger.NewLedger(memstore.NewSlotStore(), shared.NewLogPublisher(logger), clk, config.NewTestConfig(), shared.NopMetrics{}, logger)
	cmds := commands.NewSlotCommands(l, memo)

	slot, err := cmds.OpenSlot(ctx, camp, date, 2, decimal.NewFromInt(3000))
	require.NoError(t, err)
	assert.Equal(t, availability.StateOpen, slot.State())

	_, err = l.Reserve(ctx, camp, date, 2)
	require.NoError(t, err)

	slot, err = cmds.ReleaseUnits(ctx, camp, date, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, slot.Booked())

	slot, err = cmds.BlockSlot(ctx, camp, date)
	require.NoError(t, err)
	assert.Equal(t, availability.StateBlocked, slot.State())

	slot, err = cmds.UnblockSlot(ctx, camp, date)
	require.NoError(t, err)
	assert.Equal(t, availability.StateOpen, slot.State())
	assert.Equal(t, 4, memo.calls)

	_, err = cmds.BlockSlot(ctx, camp, date.AddDate(0, 0, 1))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, 4, memo.calls, "failed commands keep the memo")
}

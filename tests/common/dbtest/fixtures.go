//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestSlot(t *testing.T, db DBLike, campID uuid.UUID, date time.Time, capacity, booked int, basePrice decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO availability_slots (camp_id, slot_date, capacity, booked, base_price, available, version, updated_at)
		 VALUES ($1, $2, $3, $4, $5, true, 1, now())`,
		campID, date, capacity, booked, basePrice.String())
	require.NoError(t, err)
}

func SlotBooked(t *testing.T, db DBLike, campID uuid.UUID, date time.Time) int {
	t.Helper()

	var booked int
	err := db.QueryRow(context.Background(),
		"SELECT booked FROM availability_slots WHERE camp_id = $1 AND slot_date = $2", campID, date).Scan(&booked)
	require.NoError(t, err)
	return booked
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}

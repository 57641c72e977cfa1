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

	"hotel-frontdesk/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the slice of pgxpool.Pool the fixtures need, so helpers also
// accept transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestStaffPassword is the plaintext behind every fixture staff account.
const TestStaffPassword = "password123"

var (
	staffHashOnce sync.Once
	staffHash     string
)

func testStaffHash(t *testing.T) string {
	staffHashOnce.Do(func() {
		hash, err := password.HashPassword(TestStaffPassword)
		require.NoError(t, err)
		staffHash = hash
	})
	return staffHash
}

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO staff (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		staffID, email, testStaffHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestGuest(t *testing.T, db DBLike, firstName, lastName string) uuid.UUID {
	t.Helper()

	guestID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO guests (id, first_name, last_name, gender, nationality, nationality_code) VALUES ($1, $2, $3, 'unspecified', 'United Kingdom', 'GB')",
		guestID, firstName, lastName)
	require.NoError(t, err)

	return guestID
}

// inserts the room catalog every availability test depends on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO room_types (name) VALUES
		    ('Standard Double'),
		    ('Twin'),
		    ('Suite')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (number, room_type_id)
		SELECT v.number, rt.id
		FROM (VALUES
		    ('101', 'Standard Double'),
		    ('102', 'Standard Double'),
		    ('201', 'Twin'),
		    ('202', 'Twin'),
		    ('301', 'Suite')
		) AS v(number, type_name)
		JOIN room_types rt ON rt.name = v.type_name
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

// Package journal keeps a session-scoped activity log of ledger events.
//
// The journal lives in a private in-memory SQLite database and disappears
// when it is closed or the process exits.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/eatsplit/internal/ledger"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Entry is one recorded ledger event.
type Entry struct {
	ID         int64
	Kind       ledger.EventKind
	FriendID   string
	FriendName string
	Amount     decimal.Decimal
	Balance    decimal.Decimal
	At         time.Time
}

// Journal records ledger events. It implements ledger.Observer.
type Journal struct {
	db *sql.DB
}

var _ ledger.Observer = (*Journal)(nil)

// Open creates an empty in-memory journal.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}
	// every new connection to :memory: would see its own empty database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database. All entries are discarded.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Observe records e. Failures are logged and otherwise ignored so the
// ledger never sees journal errors.
func (j *Journal) Observe(e ledger.Event) {
	if err := j.Record(context.Background(), e); err != nil {
		slog.Warn("journal: failed to record event", "kind", e.Kind, "friend_id", e.FriendID, "error", err)
	}
}

// Record inserts e.
func (j *Journal) Record(ctx context.Context, e ledger.Event) error {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := j.db.ExecContext(ctx, `INSERT INTO events
		(kind, friend_id, friend_name, amount, balance, at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		string(e.Kind), e.FriendID, e.FriendName,
		e.Amount.String(), e.Balance.String(), at.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.QueryContext(ctx, `SELECT
		id, kind, friend_id, friend_name, amount, balance, at
		FROM events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, amount, balance, at string
		if err := rows.Scan(&e.ID, &kind, &e.FriendID, &e.FriendName, &amount, &balance, &at); err != nil {
			return nil, err
		}
		e.Kind = ledger.EventKind(kind)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("entry %d amount: %w", e.ID, err)
		}
		if e.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("entry %d balance: %w", e.ID, err)
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("entry %d time: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded entries.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

// SettledTotal sums the settlement deltas recorded for friendID.
func (j *Journal) SettledTotal(ctx context.Context, friendID string) (decimal.Decimal, error) {
	rows, err := j.db.QueryContext(ctx,
		"SELECT amount FROM events WHERE friend_id = ? AND kind = ?",
		friendID, string(ledger.EventSettled))
	if err != nil {
		return decimal.Zero, err
	}
	defer func() { _ = rows.Close() }()

	total := decimal.Zero
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return decimal.Zero, err
		}
		v, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(v)
	}
	return total, rows.Err()
}

package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"TrendScope/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (ad-hoc queries while
	// the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id                      TEXT PRIMARY KEY,
			timestamp               INTEGER NOT NULL,
			symbol                  TEXT NOT NULL,
			trading_days            INTEGER,
			last_close              REAL,
			sma_window              INTEGER,
			last_sma                REAL,
			total_upward_days       INTEGER,
			total_downward_days     INTEGER,
			longest_upward_streak   INTEGER,
			longest_downward_streak INTEGER,
			upward_run_count        INTEGER,
			downward_run_count      INTEGER,
			return_mean             REAL,
			return_stddev           REAL,
			return_best             REAL,
			return_worst            REAL,
			total_profit            REAL,
			transaction_count       INTEGER,
			trend_score             REAL,
			trend_rating            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_symbol ON analysis_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id TEXT NOT NULL,
			buy_index   INTEGER,
			sell_index  INTEGER,
			buy_time    INTEGER,
			sell_time   INTEGER,
			buy_price   REAL,
			sell_price  REAL,
			profit      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_snapshot ON transactions(snapshot_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable converts NaN/Inf to NULL; SQLite REAL columns cannot hold them.
func nullable(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) RecordAnalysis(report *model.AnalysisReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lastSMA := math.NaN()
	if len(report.SMA) > 0 {
		lastSMA = report.SMA[len(report.SMA)-1]
	}

	s := report.Series
	runs := report.Runs
	sum := report.ReturnsSummary

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO analysis_snapshots
		(id, timestamp, symbol, trading_days, last_close, sma_window, last_sma,
		 total_upward_days, total_downward_days, longest_upward_streak, longest_downward_streak,
		 upward_run_count, downward_run_count,
		 return_mean, return_stddev, return_best, return_worst,
		 total_profit, transaction_count, trend_score, trend_rating)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		report.ID, report.GeneratedAt.Unix(), report.Symbol, s.Len(), s.LastClose(),
		report.SMAWindow, nullable(lastSMA),
		runs.TotalUpwardDays, runs.TotalDownwardDays,
		runs.LongestUpwardStreak, runs.LongestDownwardStreak,
		runs.UpwardRunCount, runs.DownwardRunCount,
		nullable(sum.Mean), nullable(sum.StdDev), nullable(sum.Best), nullable(sum.Worst),
		report.Profit.TotalProfit, len(report.Profit.Transactions),
		report.Trend.TotalScore, report.Trend.Rating,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	for _, t := range report.Profit.Transactions {
		_, err = tx.Exec(`INSERT INTO transactions
			(snapshot_id, buy_index, sell_index, buy_time, sell_time, buy_price, sell_price, profit)
			VALUES (?,?,?,?,?,?,?,?)`,
			report.ID, t.BuyIndex, t.SellIndex,
			s.Timestamps[t.BuyIndex].Unix(), s.Timestamps[t.SellIndex].Unix(),
			s.Closes[t.BuyIndex], s.Closes[t.SellIndex],
			s.Closes[t.SellIndex]-s.Closes[t.BuyIndex],
		)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

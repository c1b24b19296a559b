package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"TrendScope/internal/collector"
	"TrendScope/internal/notifier"
	"TrendScope/internal/recorder"
	"TrendScope/internal/report"
	"TrendScope/internal/watchlist"
)

// Scheduler runs the daily analysis pass over the watchlist and services
// interactive commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Watchlist *watchlist.Manager
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, wl *watchlist.Manager, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Watchlist: wl,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily analysis task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAllNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunAllNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	symbols := s.Watchlist.Symbols()
	log.Printf("[INFO] running daily analysis for %d symbols", len(symbols))

	for _, symbol := range symbols {
		if s.Ctx.Err() != nil {
			return
		}
		if err := s.analyzeAndDeliver(symbol); err != nil {
			log.Printf("[ERROR] daily analysis for %s: %v", symbol, err)
			s.trySend(fmt.Sprintf("❌ Analysis failed for %s: %v", symbol, err))
		}
	}
}

// analyzeAndDeliver runs one symbol through the full pipeline: analyze,
// notify, record, mark.
func (s *Scheduler) analyzeAndDeliver(symbol string) error {
	rep, err := s.Collector.Analyze(symbol)
	if err != nil {
		return err
	}

	s.trySend(report.Format(rep))

	if err := s.Recorder.RecordAnalysis(rep); err != nil {
		log.Printf("[ERROR] record analysis for %s: %v", symbol, err)
	}
	s.Watchlist.MarkAnalyzed(symbol, rep.Trend.TotalScore, rep.Trend.Rating)
	return nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText()
	}

	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = strings.ToUpper(fields[1])
	}

	switch cmd {
	case "/report":
		if arg == "" {
			return "Usage: /report SYMBOL"
		}
		rep, err := s.Collector.Analyze(arg)
		if err != nil {
			return fmt.Sprintf("❌ Analysis failed for %s: %v", arg, err)
		}
		if err := s.Recorder.RecordAnalysis(rep); err != nil {
			log.Printf("[ERROR] record analysis for %s: %v", arg, err)
		}
		return report.Format(rep)

	case "/watch":
		if arg == "" {
			return "Usage: /watch SYMBOL"
		}
		if s.Watchlist.Add(arg) {
			return fmt.Sprintf("✅ Watching %s", arg)
		}
		return fmt.Sprintf("%s is already on the watchlist", arg)

	case "/unwatch":
		if arg == "" {
			return "Usage: /unwatch SYMBOL"
		}
		if s.Watchlist.Remove(arg) {
			return fmt.Sprintf("✅ Stopped watching %s", arg)
		}
		return fmt.Sprintf("%s is not on the watchlist", arg)

	case "/list":
		symbols := s.Watchlist.Symbols()
		if len(symbols) == 0 {
			return "Watchlist is empty. Add a symbol with /watch SYMBOL"
		}
		var b strings.Builder
		b.WriteString("👀 <b>Watchlist</b>\n")
		for _, sym := range symbols {
			entry, _ := s.Watchlist.Get(sym)
			if entry.LastRating != "" {
				b.WriteString(fmt.Sprintf("  %s — %s (%+.3f) at %s\n",
					sym, entry.LastRating, entry.LastScore,
					entry.LastAnalyzedAt.Format("2006-01-02")))
			} else {
				b.WriteString(fmt.Sprintf("  %s — not analyzed yet\n", sym))
			}
		}
		return b.String()

	case "/run":
		go s.RunAllNow()
		return "🔄 Running analysis for all watched symbols"

	default:
		return helpText()
	}
}

func helpText() string {
	return "Commands:\n" +
		"• /report SYMBOL — analyze a symbol now\n" +
		"• /watch SYMBOL — add to watchlist\n" +
		"• /unwatch SYMBOL — remove from watchlist\n" +
		"• /list — show watchlist\n" +
		"• /run — analyze all watched symbols"
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendReport(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

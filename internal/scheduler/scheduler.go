package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"StockInsight/internal/analyzer"
	"StockInsight/internal/notifier"
	"StockInsight/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the watchlist analysis on a cron schedule and serves
// on-demand analysis commands.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, an *analyzer.Analyzer, tn *notifier.TelegramNotifier, rec recorder.Recorder, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  an,
		Notifier:  tn,
		Recorder:  rec,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register registers the daily watchlist task.
func (s *Scheduler) Register(dailyCron string) error {
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

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Printf("[INFO] running daily analysis for %d symbols", len(s.Watchlist))
	for _, symbol := range s.Watchlist {
		s.analyzeAndReport(symbol)
	}
}

func (s *Scheduler) analyzeAndReport(symbol string) {
	a, err := s.Analyzer.Analyze(symbol)
	if err != nil {
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		s.trySend(fmt.Sprintf("❌ Analysis failed for %s: %v", symbol, err))
		return
	}

	s.trySend(notifier.FormatAnalysisReport(a))

	if err := s.Recorder.RecordAnalysis(a); err != nil {
		log.Printf("[ERROR] record analysis for %s: %v", symbol, err)
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}
	switch fields[0] {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		go s.analyzeAndReport(strings.ToUpper(fields[1]))
		return ""
	case "/watchlist":
		return "Watchlist: " + strings.Join(s.Watchlist, ", ")
	case "/run":
		go s.dailyTask()
		return ""
	default:
		return helpText
	}
}

const helpText = "Available commands:\n• /analyze SYMBOL\n• /watchlist\n• /run"

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

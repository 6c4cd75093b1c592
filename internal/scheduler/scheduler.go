package scheduler

import (
	"context"
	"fmt"
	"log"

	"GoldSentinel/internal/engine"
	"GoldSentinel/internal/model"
	"GoldSentinel/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler drives periodic evaluation cycles and pushes notable results to
// Telegram: actionable signals and lock transitions, not every WAIT.
type Scheduler struct {
	Cron     *cron.Cron
	Eval     *engine.Evaluator
	Notifier *notifier.TelegramNotifier
	Ctx      context.Context

	lastSignal model.Signal
	lastLocked bool
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eval *engine.Evaluator, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Eval:       eval,
		Notifier:   tn,
		Ctx:        ctx,
		lastSignal: model.SignalWait,
	}
}

// RegisterAll registers the evaluation task.
func (s *Scheduler) RegisterAll(evalCron string) error {
	if _, err := s.Cron.AddFunc(evalCron, s.evalTask); err != nil {
		return fmt.Errorf("register eval task: %w", err)
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

// RunNow executes the evaluation task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.evalTask()
}

func (s *Scheduler) evalTask() {
	rep := s.Eval.Evaluate(s.Ctx)
	log.Printf("[INFO] evaluated: signal=%s confidence=%.0f lock=%v forecast=%q",
		rep.Signal, rep.Confidence, rep.Lock.Engaged, rep.Forecast)

	// Push on entering/leaving a lock or on a new actionable signal.
	// Repeated identical WAITs stay quiet.
	notable := rep.Lock.Engaged != s.lastLocked ||
		(rep.Actionable && rep.Signal != s.lastSignal)
	s.lastSignal = rep.Signal
	s.lastLocked = rep.Lock.Engaged

	if notable {
		s.trySend(notifier.FormatReport(rep))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/status", "status":
		rep := s.Eval.Evaluate(s.Ctx)
		return notifier.FormatReport(rep)
	case "/forecast", "forecast":
		rep := s.Eval.Evaluate(s.Ctx)
		return notifier.FormatForecast(rep)
	default:
		return "Commands:\n• /status — full signal report\n• /forecast — forecast label only"
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

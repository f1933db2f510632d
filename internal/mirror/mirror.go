// Package mirror pushes the locally persisted learning state to the
// remote account service after each append. The push is fire and
// forget: the local write has already succeeded by the time a payload
// is enqueued, and nothing here can roll it back or block it.
package mirror

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/enpeak/linglog/internal/history"
	"github.com/enpeak/linglog/internal/store"
)

// Payload is the state snapshot mirrored to the account service. The
// field names match the account document layout.
type Payload struct {
	LearningHistory []history.Record `json:"learningHistory"`
	LearningStats   statsJSON        `json:"learningStats"`
}

type statsJSON struct {
	LastActiveDate string    `json:"lastActiveDate,omitempty"`
	Streak         int       `json:"streak"`
	BestStreak     int       `json:"bestStreak"`
	TodayStats     todayJSON `json:"todayStats"`
}

type todayJSON struct {
	Date                  string `json:"date"`
	TotalSessions         int    `json:"totalSessions"`
	TotalMinutes          int    `json:"totalMinutes"`
	VocabularyWords       int    `json:"vocabularyWords"`
	ConversationScenarios int    `json:"conversationScenarios"`
}

// Syncer delivers one payload to the account service.
type Syncer interface {
	Sync(ctx context.Context, p Payload) error
}

// Dispatcher queues payloads and delivers them on a single background
// worker. Enqueueing never blocks: when the queue is full the oldest
// pending payload is discarded, since every payload carries the full
// state and only the newest matters.
type Dispatcher struct {
	syncer  Syncer
	timeout time.Duration

	queue chan Payload
	wg    sync.WaitGroup

	closed    atomic.Bool
	closeOnce sync.Once
}

// NewDispatcher starts a dispatcher over the given syncer.
func NewDispatcher(s Syncer, depth int) *Dispatcher {
	if depth <= 0 {
		depth = 8
	}
	d := &Dispatcher{
		syncer:  s,
		timeout: 10 * time.Second,
		queue:   make(chan Payload, depth),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Notify implements history.Notifier. Calls after Close are ignored.
func (d *Dispatcher) Notify(records []history.Record, stats store.StatsData) {
	if d.closed.Load() {
		return
	}
	p := Payload{
		LearningHistory: records,
		LearningStats: statsJSON{
			LastActiveDate: stats.LastActiveDate,
			Streak:         stats.Streak,
			BestStreak:     stats.BestStreak,
			TodayStats: todayJSON{
				Date:                  stats.TodayDate,
				TotalSessions:         stats.TodaySessions,
				TotalMinutes:          stats.TodayMinutes,
				VocabularyWords:       stats.TodayWords,
				ConversationScenarios: stats.TodayScenarios,
			},
		},
	}

	for {
		select {
		case d.queue <- p:
			return
		default:
		}
		// Queue full: drop the oldest pending payload and retry.
		select {
		case <-d.queue:
		default:
		}
	}
}

// Close stops accepting payloads and waits for in-flight deliveries.
// Callers must not run Notify concurrently with Close; later Notify
// calls are dropped rather than delivered.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for p := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.syncer.Sync(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: account sync failed: %v\n", err)
		}
		cancel()
	}
}

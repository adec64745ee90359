package stats

import (
	"errors"
	"fmt"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"
)

var ErrNoInterval = errors.New("report interval must be positive")

type Notifier interface {
	Send(message string) error
}

type Reporter struct {
	stats    *Stats
	notifier Notifier
	previous string
}

func NewReporter(s *Stats, n Notifier) *Reporter {
	return &Reporter{stats: s, notifier: n}
}

// Run logs the report and sends it when it changed since the last run.
func (r *Reporter) Run() {
	report := r.stats.Report()
	log.Info(report)
	if r.notifier == nil || report == r.previous {
		return
	}
	if err := r.notifier.Send(report); err != nil {
		log.Warnf("Could not send report: %v", err)
		return
	}
	r.previous = report
}

// Start runs the reporter every interval seconds. Closing the returned
// channel stops it.
func (r *Reporter) Start(interval uint64) (chan bool, error) {
	if interval == 0 {
		return nil, ErrNoInterval
	}
	s := gocron.NewScheduler()
	if err := s.Every(interval).Seconds().Do(r.Run); err != nil {
		return nil, fmt.Errorf("schedule report: %w", err)
	}
	return s.Start(), nil
}

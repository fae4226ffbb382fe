package ingest

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const historySize = 20

var messages = map[Direction]struct{ done, failed string }{
	Import: {"Импорт успешно завершён: ", "Не удалось выполнить импорт: Ошибка при импорте базы данных из CSV"},
	Export: {"Экспорт успешно завершён: ", "Не удалось выполнить экспорт: Ошибка при экспорте базы данных в CSV"},
}

type Service struct {
	api Transfer
	now func() time.Time

	mu   sync.Mutex
	runs []Run
}

func NewService(api Transfer) *Service {
	return &Service{api: api, now: time.Now}
}

// Run performs one transfer and records it. The returned run carries the
// text the page shows whether the transfer failed or not; err is the cause
// of a failure.
func (s *Service) Run(ctx context.Context, d Direction) (run Run, err error) {
	run = Run{ID: uuid.NewString(), Direction: d, Status: "RUNNING", StartedAt: s.now()}

	var text string
	switch d {
	case Import:
		text, err = s.api.ImportCSV(ctx)
	default:
		text, err = s.api.ExportCSV(ctx)
	}

	finished := s.now()
	run.FinishedAt = &finished
	if err != nil {
		run.Status = "FAILED"
		run.Error = err.Error()
		run.Message = messages[d].failed
		log.Printf("csv %s failed run_id=%s: %v", d, run.ID, err)
	} else {
		run.Status = "COMPLETED"
		run.Message = messages[d].done + text
		log.Printf("csv %s completed run_id=%s duration_ms=%d", d, run.ID, finished.Sub(run.StartedAt).Milliseconds())
	}
	s.record(run)
	return run, err
}

func (s *Service) record(run Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	if len(s.runs) > historySize {
		s.runs = s.runs[len(s.runs)-historySize:]
	}
}

// Runs returns the recorded runs, newest first.
func (s *Service) Runs() []Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Run, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		out = append(out, s.runs[i])
	}
	return out
}

package service

import (
	"time"

	"github.com/atinyakov/shortlink/internal/models"
)

type ClickRecorder struct {
	queue ClickQueue
}

func NewClickRecorder(queue ClickQueue) *ClickRecorder {
	return &ClickRecorder{queue: queue}
}

// Record queues the visit for enrichment and persistence and returns at
// once. A full queue drops the click; the queue logs it.
func (r *ClickRecorder) Record(linkID, code string, visit models.Visit) bool {
	if visit.OccurredAt.IsZero() {
		visit.OccurredAt = time.Now().UTC()
	}

	return r.queue.Enqueue(models.ClickJob{
		LinkID: linkID,
		Code:   code,
		Visit:  visit,
	})
}

package worker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

const (
	ClickSubject    = "clicks.record"
	clickQueueGroup = "click-workers"
)

// Conn is the part of *nats.Conn the queue uses.
type Conn interface {
	Publish(subj string, data []byte) error
	QueueSubscribe(subj, queue string, cb nats.MsgHandler) (*nats.Subscription, error)
}

// Local is where received jobs end up, normally a *ClickWorker.
type Local interface {
	Enqueue(models.ClickJob) bool
}

// NATSQueue publishes click jobs to NATS and feeds the ones it receives
// into a local pool, so any replica may persist a click.
type NATSQueue struct {
	conn   Conn
	local  Local
	logger *zap.Logger
	sub    *nats.Subscription
}

func ConnectNATS(url string, logger *zap.Logger) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("shortlink"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
}

func NewNATSQueue(conn Conn, local Local, logger *zap.Logger) *NATSQueue {
	return &NATSQueue{
		conn:   conn,
		local:  local,
		logger: logger,
	}
}

// Subscribe joins the click queue group.
func (q *NATSQueue) Subscribe() error {
	sub, err := q.conn.QueueSubscribe(ClickSubject, clickQueueGroup, q.handle)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", ClickSubject, err)
	}
	q.sub = sub
	return nil
}

func (q *NATSQueue) handle(msg *nats.Msg) {
	var job models.ClickJob
	if err := json.Unmarshal(msg.Data, &job); err != nil {
		q.logger.Warn("malformed click job", zap.Error(err))
		return
	}
	q.local.Enqueue(job)
}

// Enqueue publishes the job. Publishing is buffered by the client, so it
// does not wait for the server.
func (q *NATSQueue) Enqueue(job models.ClickJob) bool {
	data, err := json.Marshal(job)
	if err != nil {
		q.logger.Warn("cannot encode click job", zap.Error(err))
		return false
	}

	if err := q.conn.Publish(ClickSubject, data); err != nil {
		q.logger.Warn("click dropped, publish failed", zap.String("link_id", job.LinkID), zap.Error(err))
		return false
	}
	return true
}

func (q *NATSQueue) Close() error {
	if q.sub == nil {
		return nil
	}
	return q.sub.Drain()
}

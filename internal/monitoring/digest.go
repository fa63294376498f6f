package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DigestPayload is broadcast with services.EventMessagesDigest.
type DigestPayload struct {
	Unread int `json:"unread"`
	Total  int `json:"total"`
}

// Digest periodically reports the number of unread contact messages.
type Digest struct {
	messages services.MessageServiceProvider
	events   services.EventServiceProvider
	cron     *cron.Cron
	timeout  time.Duration
}

// NewDigest creates a digest job on the given cron schedule. Standard
// five-field expressions and descriptors such as "@hourly" are accepted.
func NewDigest(messages services.MessageServiceProvider, events services.EventServiceProvider, schedule string) (*Digest, error) {
	d := &Digest{
		messages: messages,
		events:   events,
		cron:     cron.New(),
		timeout:  30 * time.Second,
	}
	if _, err := d.cron.AddFunc(schedule, d.run); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	return d, nil
}

// Start runs the cron scheduler in its own goroutine.
func (d *Digest) Start() {
	log.Info().Msg("Starting unread message digest")
	d.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (d *Digest) Stop() {
	<-d.cron.Stop().Done()
	log.Info().Msg("Stopped unread message digest")
}

func (d *Digest) run() {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	payload, err := d.collect(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Digest: failed to count messages")
		return
	}

	log.Info().Int("unread", payload.Unread).Int("total", payload.Total).Msg("Unread message digest")
	if payload.Unread > 0 {
		d.events.Publish(services.EventMessagesDigest, payload)
	}
}

func (d *Digest) collect(ctx context.Context) (DigestPayload, error) {
	messages, err := d.messages.GetAllMessages(ctx)
	if err != nil {
		return DigestPayload{}, err
	}
	payload := DigestPayload{Total: len(messages)}
	for _, m := range messages {
		if !m.IsRead {
			payload.Unread++
		}
	}
	return payload, nil
}

package client

import (
	"context"
	"time"
)

// Monitor polls the health endpoint on a fixed interval and reports
// connectivity changes. Probes run one at a time: the loop blocks on the
// in-flight check, and ticks that land meanwhile are coalesced by the
// ticker, so a slow server never piles up concurrent probes.
type Monitor struct {
	client   *Client
	interval time.Duration
	onChange func(connected bool)

	connected bool
	seeded    bool
}

func NewMonitor(c *Client, interval time.Duration, onChange func(connected bool)) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		client:   c,
		interval: interval,
		onChange: onChange,
	}
}

// Run probes immediately, then on every tick, until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	h, err := m.client.Health(ctx)
	connected := err == nil && h.Status == "healthy" && h.Database == "connected"

	if !m.seeded || connected != m.connected {
		m.seeded = true
		m.connected = connected
		if m.onChange != nil {
			m.onChange(connected)
		}
	}
}

package calsync

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/daypack/pkg/event"
)

// Remote is the external calendar source of truth. Exchange merges the local
// events with the remote calendar and returns the full merged set; it must
// never touch local storage, the reconciler owns the write-back.
type Remote interface {
	Exchange(ctx context.Context, local []event.Event) ([]event.Event, error)
}

// minRemoteEvents is the floor the simulated calendar pads the merged set up
// to, standing in for events that only exist remotely.
const minRemoteEvents = 5

var fabricatedTitles = []string{
	"Team sync",
	"1:1 with manager",
	"Product review",
	"Sprint planning",
	"Demo day",
}

// Simulated stands in for a real calendar provider. Every local event comes
// back tagged with its remote identifier, and when the calendar is sparse it
// invents future-dated remote-originated events up to the floor.
type Simulated struct {
	Delay time.Duration
	Now   func() time.Time
}

func (r Simulated) Exchange(ctx context.Context, local []event.Event) ([]event.Event, error) {
	delay := r.Delay
	if delay == 0 {
		delay = 800 * time.Millisecond
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	merged := make([]event.Event, len(local))
	copy(merged, local)
	for i := range merged {
		merged[i].Synced = true
		merged[i].RemoteID = fmt.Sprintf("remote_%d", merged[i].ID)
	}

	for i := len(merged); i < minRemoteEvents; i++ {
		day := now.AddDate(0, 0, i+1)
		e := event.Event{
			ID:          uint64(now.UnixMilli()) + uint64(i),
			Title:       fabricatedTitles[i%len(fabricatedTitles)],
			Date:        day.Format("2006-01-02"),
			Synced:      true,
			Description: "Imported from remote calendar",
		}
		e.RemoteID = fmt.Sprintf("remote_%d", e.ID)
		merged = append(merged, e)
	}
	return merged, nil
}

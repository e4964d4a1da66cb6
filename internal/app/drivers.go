package app

import (
	"context"
	"sync"

	"github.com/dshills/keychord/internal/command"
	"github.com/dshills/keychord/internal/input/key"
)

// Recorder is a Driver that keeps every command it is given.
type Recorder struct {
	mu       sync.Mutex
	commands []command.Command
}

// Apply records c.
func (r *Recorder) Apply(c command.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, c)
	return nil
}

// Commands returns the recorded commands in order.
func (r *Recorder) Commands() []command.Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]command.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Reset forgets recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = nil
}

// SliceSource is a Source that replays a fixed key sequence and then
// closes.
type SliceSource []key.Key

// Keys sends each key in order.
func (s SliceSource) Keys(ctx context.Context) <-chan key.Key {
	out := make(chan key.Key)
	go func() {
		defer close(out)
		for _, k := range s {
			select {
			case out <- k:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

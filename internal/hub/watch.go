package hub

import (
	"context"

	"github.com/PriKalra/priyata-universe/internal/content"
)

// Phase tracks a consumer attachment through the loading state machine.
// Each Watch call moves loading -> ready or loading -> error and then
// stops; a new attachment starts over.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

// State is one emission of the Watch state machine.
type State struct {
	Phase Phase
	Items []content.Item
	Err   error
}

// Watch runs Load in the background and emits the loading state followed
// by exactly one terminal state, then closes the channel. If ctx is
// cancelled before the pipeline settles, the late result is discarded and
// the channel closes without a terminal emission.
func (h *Hub) Watch(ctx context.Context) <-chan State {
	out := make(chan State, 2)
	go func() {
		defer close(out)
		out <- State{Phase: PhaseLoading}

		items, err := h.Load(ctx)

		select {
		case <-ctx.Done():
			return
		default:
		}

		if err != nil {
			out <- State{Phase: PhaseError, Err: err}
			return
		}
		out <- State{Phase: PhaseReady, Items: items}
	}()
	return out
}

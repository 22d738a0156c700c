package actions

import (
	"errors"
	"fmt"

	"github.com/automoto/followtheleader/mathutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	ErrNestedRepeat     = errors.New("actions: repeat is only supported at the top level")
	ErrZeroDurationLoop = errors.New("actions: repeating schedule has zero duration")
)

type step struct {
	kind     Kind
	delta    mathutil.Point
	seconds  float64
	callback func()
}

// Runner plays a schedule. Each Update advances it by dt seconds and returns the
// translation to apply to whatever the schedule drives. Moves are interpolated with
// linear tweens; time left over when a step ends carries into the next one.
type Runner struct {
	steps []step
	loop  bool

	index    int
	elapsed  float64
	progress float32
	tween    *gween.Tween
	done     bool
}

func NewRunner(a Action) (*Runner, error) {
	r := &Runner{}
	root := a
	if a.Kind == KindRepeat {
		r.loop = true
		root = a.Children[0]
	}
	if err := r.flatten(root); err != nil {
		return nil, err
	}
	if r.loop && root.Duration() <= 0 {
		return nil, ErrZeroDurationLoop
	}
	r.Reset()
	return r, nil
}

func (r *Runner) flatten(a Action) error {
	switch a.Kind {
	case KindMove, KindWait:
		r.steps = append(r.steps, step{kind: a.Kind, delta: a.Delta, seconds: a.Seconds})
	case KindRun:
		r.steps = append(r.steps, step{kind: KindRun, callback: a.Callback})
	case KindSequence:
		for _, c := range a.Children {
			if err := r.flatten(c); err != nil {
				return err
			}
		}
	case KindRepeat:
		return ErrNestedRepeat
	default:
		return fmt.Errorf("actions: unknown action kind %d", a.Kind)
	}
	return nil
}

// Reset rewinds to the first step.
func (r *Runner) Reset() {
	r.done = len(r.steps) == 0
	r.start(0)
}

// Done reports whether a non-repeating schedule has finished.
func (r *Runner) Done() bool {
	return r.done
}

// Index is the position of the current step in the flattened schedule.
func (r *Runner) Index() int {
	return r.index
}

func (r *Runner) start(i int) {
	r.index = i
	r.elapsed = 0
	r.progress = 0
	r.tween = nil
	if r.done {
		return
	}
	if s := r.steps[i]; s.seconds > 0 {
		r.tween = gween.New(0, 1, float32(s.seconds), ease.Linear)
	}
}

func (r *Runner) advance() {
	next := r.index + 1
	if next >= len(r.steps) {
		if !r.loop {
			r.done = true
			return
		}
		next = 0
	}
	r.start(next)
}

func (r *Runner) Update(dt float64) mathutil.Point {
	moved := mathutil.Zero
	remaining := dt

	for !r.done {
		s := r.steps[r.index]

		if s.kind == KindRun {
			if s.callback != nil {
				s.callback()
			}
			r.advance()
			continue
		}

		if s.seconds <= 0 {
			if s.kind == KindMove {
				moved = moved.Add(s.delta)
			}
			r.advance()
			continue
		}

		if remaining <= 0 {
			break
		}

		left := s.seconds - r.elapsed
		if remaining >= left {
			remaining -= left
			// Finish on the exact delta regardless of float32 tween drift.
			if s.kind == KindMove {
				moved = moved.Add(s.delta.Scale(float64(1 - r.progress)))
			}
			r.advance()
			continue
		}

		r.elapsed += remaining
		current, _ := r.tween.Update(float32(remaining))
		remaining = 0
		if s.kind == KindMove {
			moved = moved.Add(s.delta.Scale(float64(current - r.progress)))
		}
		r.progress = current
	}

	return moved
}

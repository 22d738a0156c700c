// Package actions describes scripted, timed motion as a declarative schedule and
// provides a tween-backed runner that plays such a schedule frame by frame.
package actions

import "github.com/automoto/followtheleader/mathutil"

// Kind identifies the primitive an Action node represents.
type Kind int

const (
	KindMove Kind = iota
	KindWait
	KindRun
	KindSequence
	KindRepeat
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindWait:
		return "wait"
	case KindRun:
		return "run"
	case KindSequence:
		return "sequence"
	case KindRepeat:
		return "repeat"
	}
	return "unknown"
}

// Action is one node of a schedule. Build it with MoveBy, Wait, Run, Sequence and
// RepeatForever; the constructors copy their inputs so a built schedule is never
// mutated by later calls.
type Action struct {
	Kind     Kind
	Delta    mathutil.Point // KindMove: relative translation
	Seconds  float64        // KindMove, KindWait
	Callback func()         // KindRun
	Children []Action       // KindSequence: ordered; KindRepeat: exactly one
}

// MoveBy translates by delta over the given duration.
func MoveBy(delta mathutil.Point, seconds float64) Action {
	return Action{Kind: KindMove, Delta: delta, Seconds: seconds}
}

func Wait(seconds float64) Action {
	return Action{Kind: KindWait, Seconds: seconds}
}

// Run invokes fn once when the schedule reaches it. It takes no time.
func Run(fn func()) Action {
	return Action{Kind: KindRun, Callback: fn}
}

func Sequence(as ...Action) Action {
	children := make([]Action, len(as))
	copy(children, as)
	return Action{Kind: KindSequence, Children: children}
}

// RepeatForever plays a over and over.
func RepeatForever(a Action) Action {
	return Action{Kind: KindRepeat, Children: []Action{a}}
}

// Reversed returns the action played backwards: sequences run their children in
// reverse order, each reversed, and moves translate by the negated delta over the
// same duration. Waits and callbacks are their own reverse.
func (a Action) Reversed() Action {
	switch a.Kind {
	case KindMove:
		return MoveBy(a.Delta.Scale(-1), a.Seconds)
	case KindSequence:
		rev := make([]Action, len(a.Children))
		for i, c := range a.Children {
			rev[len(a.Children)-1-i] = c.Reversed()
		}
		return Action{Kind: KindSequence, Children: rev}
	case KindRepeat:
		return RepeatForever(a.Children[0].Reversed())
	}
	return a
}

// Duration is the length of one pass in seconds. For a repeat it is the duration
// of the repeated action.
func (a Action) Duration() float64 {
	switch a.Kind {
	case KindMove, KindWait:
		return a.Seconds
	case KindSequence, KindRepeat:
		total := 0.0
		for _, c := range a.Children {
			total += c.Duration()
		}
		return total
	}
	return 0
}

// Displacement is the net translation of one pass.
func (a Action) Displacement() mathutil.Point {
	switch a.Kind {
	case KindMove:
		return a.Delta
	case KindSequence, KindRepeat:
		total := mathutil.Zero
		for _, c := range a.Children {
			total = total.Add(c.Displacement())
		}
		return total
	}
	return mathutil.Zero
}

func (a Action) Repeats() bool {
	return a.Kind == KindRepeat
}

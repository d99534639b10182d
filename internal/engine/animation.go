package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Command is a deferred per-tick mutation. The only variant is a pan step;
// commands are plain data rather than closures so nothing captures shared
// engine state by reference.
type Command struct {
	PanBy mgl32.Vec2
}

type animationEntry struct {
	cmd    Command
	expiry time.Time
}

// AnimationQueue holds time-bounded commands applied once per tick until
// expiry. Entries fire in insertion order and are not deduplicated:
// repeated key presses stack, and their steps sum. The per-tick step is a
// constant, so total displacement over the window depends on the achieved
// tick rate rather than wall time; that behavior is pinned by tests.
type AnimationQueue struct {
	entries []animationEntry
}

// Enqueue appends a command expiring at now + duration.
func (q *AnimationQueue) Enqueue(cmd Command, now time.Time, duration time.Duration) {
	q.entries = append(q.entries, animationEntry{cmd: cmd, expiry: now.Add(duration)})
}

// Tick prunes entries whose expiry has been reached, then applies every
// surviving command exactly once, in insertion order.
func (q *AnimationQueue) Tick(now time.Time, pan *PanModel) {
	alive := q.entries[:0]
	for _, e := range q.entries {
		if now.Before(e.expiry) {
			alive = append(alive, e)
		}
	}
	q.entries = alive

	for _, e := range q.entries {
		pan.Nudge(e.cmd.PanBy)
	}
}

func (q *AnimationQueue) Len() int {
	return len(q.entries)
}

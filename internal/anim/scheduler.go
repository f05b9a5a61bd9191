// Package anim drives incremental playback of a symbol stream.
//
// The scheduler is cooperative and single-threaded: an external timer (the
// TUI's tick message, a test loop) calls Tick, and each tick executes
// exactly one symbol. Pause, stop, and rebinding never race with ticks
// because everything runs on the one caller goroutine; stale timers that
// fire after a stop are rejected by an epoch check instead of locks.
package anim

import "time"

// Speed bounds in milliseconds per command.
const (
	MinSpeedMs     = 1
	MaxSpeedMs     = 100
	DefaultSpeedMs = 10
)

// Stream yields symbols in generation order. Next returns false when the
// stream is exhausted.
type Stream interface {
	Next() (rune, bool)
}

// Executor consumes one symbol per tick and can reset to its initial
// drawing state.
type Executor interface {
	Exec(sym rune)
	Reset()
}

// Phase is the scheduler's lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Done
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Done:
		return "done"
	default:
		return "idle"
	}
}

// Scheduler advances an Executor one symbol per tick, with pause/resume,
// stop, and progress reporting against an estimated total.
type Scheduler struct {
	exec      Executor
	stream    Stream
	phase     Phase
	processed int
	estimated int64
	speedMs   int
	epoch     int
}

// NewScheduler wires a scheduler to its executor, idle and unbound.
func NewScheduler(exec Executor) *Scheduler {
	return &Scheduler{exec: exec, speedMs: DefaultSpeedMs}
}

// Bind attaches a fresh symbol stream and its length estimate, discards any
// previous progress, and primes the executor at its reset state. Pending
// ticks from an earlier binding become stale.
func (s *Scheduler) Bind(stream Stream, estimated int64) {
	s.epoch++
	s.stream = stream
	s.estimated = estimated
	s.processed = 0
	s.phase = Idle
	s.exec.Reset()
}

// Start begins or resumes playback. It reports whether a tick should be
// scheduled: false while already running-and-unpaused (idempotent), after
// normal completion, or with no stream bound.
func (s *Scheduler) Start() bool {
	if s.stream == nil || s.phase == Running || s.phase == Done {
		return false
	}
	s.phase = Running
	return true
}

// Pause halts scheduling without discarding the stream position.
func (s *Scheduler) Pause() {
	if s.phase == Running {
		s.phase = Paused
	}
}

// Stop halts playback, discards progress, and resets the executor to the
// initial drawing state. A later Bind+Start redraws from scratch.
func (s *Scheduler) Stop() {
	s.epoch++
	s.stream = nil
	s.processed = 0
	s.phase = Idle
	s.exec.Reset()
}

// Tick executes exactly one symbol. epoch must match the value captured
// when the tick was armed; mismatches are stale timers from before a
// Stop/Bind and do nothing. The return reports whether another tick should
// be armed.
func (s *Scheduler) Tick(epoch int) bool {
	if epoch != s.epoch || s.phase != Running {
		return false
	}
	if s.stream == nil {
		s.phase = Idle
		return false
	}
	sym, ok := s.stream.Next()
	if !ok {
		// Normal termination, not a failure.
		s.phase = Done
		return false
	}
	s.exec.Exec(sym)
	s.processed++
	return true
}

// SetSpeed clamps ms to [1, 100] and applies it to the next armed tick.
func (s *Scheduler) SetSpeed(ms int) {
	if ms < MinSpeedMs {
		ms = MinSpeedMs
	}
	if ms > MaxSpeedMs {
		ms = MaxSpeedMs
	}
	s.speedMs = ms
}

// SpeedMs returns the per-command delay in milliseconds.
func (s *Scheduler) SpeedMs() int { return s.speedMs }

// Delay returns the per-command delay as a duration.
func (s *Scheduler) Delay() time.Duration { return time.Duration(s.speedMs) * time.Millisecond }

// Progress reports processed/estimated. It is 0 when the estimate is 0 and
// may overshoot 1.0 when the estimate undershoots the actual length.
func (s *Scheduler) Progress() float64 {
	if s.estimated <= 0 {
		return 0
	}
	return float64(s.processed) / float64(s.estimated)
}

// Processed returns how many symbols have been executed since binding.
func (s *Scheduler) Processed() int { return s.processed }

// Estimated returns the bound length estimate.
func (s *Scheduler) Estimated() int64 { return s.estimated }

// Phase returns the current lifecycle state.
func (s *Scheduler) Phase() Phase { return s.phase }

// Animating reports whether playback is underway (running or paused).
func (s *Scheduler) Animating() bool { return s.phase == Running || s.phase == Paused }

// Paused reports whether playback is halted but resumable.
func (s *Scheduler) Paused() bool { return s.phase == Paused }

// Epoch returns the token that must accompany ticks armed now.
func (s *Scheduler) Epoch() int { return s.epoch }

package pacanim

import (
	"time"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// EventDescs is a shorthand for defining the transition map
type EventDescs = []fsm.EventDesc

// Animator states
const (
	StateIdle    = "idle"
	StatePlaying = "playing"
	StateStopped = "stopped"
)

const (
	eventPlay   = "play"
	eventFinish = "finish"
	eventStop   = "stop"
)

// Animator owns the playback state of one on-screen pac.
type Animator struct {
	catalog *Catalog
	color   Color
	pacType PacType

	fsm *fsm.FSM

	def        *AnimationDefinition
	frameIndex int
	elapsed    time.Duration
	perFrame   time.Duration
	done       chan struct{}
}

// NewAnimator creates an animator for one pac sprite set.
func NewAnimator(catalog *Catalog, color Color, pacType PacType) *Animator {
	a := &Animator{
		catalog: catalog,
		color:   color,
		pacType: pacType,
	}

	a.fsm = fsm.NewFSM(
		StateIdle,
		EventDescs{
			{Name: eventPlay, Src: []string{StateIdle, StatePlaying, StateStopped}, Dst: StatePlaying},
			{Name: eventFinish, Src: []string{StatePlaying}, Dst: StateStopped},
			{Name: eventStop, Src: []string{StateIdle, StatePlaying, StateStopped}, Dst: StateStopped},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				logrus.Debugf("Animator %s/%d: %s -> %s", a.color, a.pacType, e.Src, e.Dst)
			},
		},
	)

	return a
}

// Color returns the pac color the animator was created for.
func (a *Animator) Color() Color { return a.color }

// Type returns the pac type the animator was created for.
func (a *Animator) Type() PacType { return a.pacType }

// PlayAnimation starts the named animation kind.
//
// The returned channel is a single-shot completion handle owned by the
// caller: it is closed when a non-looping animation reaches its final
// frame, and stays open forever if the animation loops, is stopped, or
// is replaced by a later PlayAnimation call.
//
// A catalog miss or a malformed definition is logged and leaves the
// current playback untouched.
func (a *Animator) PlayAnimation(kind Kind) (<-chan struct{}, bool) {
	def := a.catalog.Lookup(a.color, a.pacType, kind)
	if def == nil {
		logrus.Warnf("No animation '%s' for %s pac type %d", kind, a.color, a.pacType)
		return nil, false
	}

	// A zero-length frame list or a per-frame duration that truncates
	// to zero would make the consume loop misbehave. Refuse to play.
	perFrame := def.FrameDuration()
	if len(def.Frames) == 0 || perFrame <= 0 {
		logrus.Warnf("Animation '%s' for %s pac type %d is malformed", kind, a.color, a.pacType)
		return nil, false
	}

	a.def = def
	a.frameIndex = 0
	a.elapsed = 0
	a.perFrame = perFrame
	a.done = make(chan struct{})
	a.fireEvent(eventPlay)

	return a.done, true
}

// Advance accumulates elapsed time and steps through the frames,
// consuming one whole frame duration per step so that a delta spanning
// several frames never drops any of them. It returns the frame the pac
// should show now, or false when nothing is playing.
func (a *Animator) Advance(delta time.Duration) (string, bool) {
	if a.def == nil || !a.fsm.Is(StatePlaying) {
		return "", false
	}

	if delta > 0 {
		a.elapsed += delta
	}

	for a.elapsed >= a.perFrame {
		a.elapsed -= a.perFrame
		a.frameIndex++
		if a.frameIndex < len(a.def.Frames) {
			continue
		}
		if a.def.Loop {
			a.frameIndex = 0
			continue
		}

		// Natural completion: hold the last frame and signal the handle.
		a.frameIndex = len(a.def.Frames) - 1
		a.elapsed = 0
		a.fireEvent(eventFinish)
		close(a.done)
		break
	}

	return a.def.Frames[a.frameIndex], true
}

// Stop halts playback without signaling completion. The pac keeps no
// active definition afterwards.
func (a *Animator) Stop() {
	a.def = nil
	a.frameIndex = 0
	a.elapsed = 0
	a.perFrame = 0
	a.fireEvent(eventStop)
}

// PeekCurrentFrame returns the current frame without advancing time.
// The renderer uses it to draw the initial frame before any tick, and
// to keep a finished pac on its final frame.
func (a *Animator) PeekCurrentFrame() (string, bool) {
	if a.def == nil {
		return "", false
	}
	return a.def.Frames[a.frameIndex], true
}

// IsAnimating reports whether an animation is currently playing.
func (a *Animator) IsAnimating() bool {
	return a.fsm.Is(StatePlaying)
}

func (a *Animator) fireEvent(name string) {
	if err := a.fsm.Event(name); err != nil {
		// Re-entering the current state is not a transition.
		if _, ok := err.(fsm.NoTransitionError); !ok {
			logrus.Errorf("Animator %s/%d: %v", a.color, a.pacType, err)
		}
	}
}

package pacanim

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Manager owns the animators of every pac in the arena and fans the
// render loop's tick out to each of them. All advancement happens
// synchronously inside AdvanceAll, there is nothing to lock.
type Manager struct {
	catalog   *Catalog
	animators map[string]*Animator
}

// NewManager creates an empty manager on top of a catalog.
func NewManager(catalog *Catalog) *Manager {
	return &Manager{
		catalog:   catalog,
		animators: make(map[string]*Animator),
	}
}

// CreateAnimator registers a new pac. Duplicate agent ids are rejected
// so that a double spawn shows up at the call site instead of silently
// replacing the old animator.
func (m *Manager) CreateAnimator(agentID string, color Color, pacType PacType) (*Animator, error) {
	if _, ok := m.animators[agentID]; ok {
		return nil, fmt.Errorf("animator for agent '%s' already exists", agentID)
	}

	animator := NewAnimator(m.catalog, color, pacType)
	m.animators[agentID] = animator
	return animator, nil
}

// AdvanceAll advances every animator exactly once and returns the frame
// each playing pac should show this tick. Pacs with nothing playing are
// absent from the snapshot. Key order carries no meaning.
func (m *Manager) AdvanceAll(delta time.Duration) map[string]string {
	snapshot := make(map[string]string, len(m.animators))
	for agentID, animator := range m.animators {
		if frame, ok := animator.Advance(delta); ok {
			snapshot[agentID] = frame
		}
	}
	return snapshot
}

// PlayAnimation starts an animation on the named pac. Unknown ids are
// logged and reported as failure.
func (m *Manager) PlayAnimation(agentID string, kind Kind) (<-chan struct{}, bool) {
	animator, ok := m.animators[agentID]
	if !ok {
		logrus.Warnf("PlayAnimation: unknown agent '%s'", agentID)
		return nil, false
	}
	return animator.PlayAnimation(kind)
}

// StopAnimation stops the named pac's playback. No-op on unknown ids.
func (m *Manager) StopAnimation(agentID string) {
	if animator, ok := m.animators[agentID]; ok {
		animator.Stop()
	}
}

// RemoveAnimator removes the named pac. No-op on unknown ids.
func (m *Manager) RemoveAnimator(agentID string) {
	delete(m.animators, agentID)
}

// Animator returns the animator registered for an agent id.
func (m *Manager) Animator(agentID string) (*Animator, bool) {
	animator, ok := m.animators[agentID]
	return animator, ok
}

// Len returns the number of registered animators.
func (m *Manager) Len() int {
	return len(m.animators)
}

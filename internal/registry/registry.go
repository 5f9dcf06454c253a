// Package registry holds the in-memory activity store backing the HTTP API.
package registry

import (
	"strings"
	"sync"

	"github.com/mergington/activities/internal/activity"
)

// Registry is a thread-safe in-memory activity store. One instance serves
// the whole process; tests reseed it through Reset instead of sharing
// package-level state.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]activity.Activity
	seed       []activity.Activity
}

// New creates a registry seeded with the default school activities.
func New() *Registry {
	return NewWith(Defaults())
}

// NewWith creates a registry seeded with the given activities. Reset
// restores this same seed.
func NewWith(seed []activity.Activity) *Registry {
	r := &Registry{seed: make([]activity.Activity, 0, len(seed))}
	for _, act := range seed {
		r.seed = append(r.seed, act.Clone())
	}
	r.activities = fromSeed(r.seed)
	return r
}

// Reset restores every roster to the construction-time seed.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = fromSeed(r.seed)
}

// List returns every activity keyed by name. Values are deep copies, so
// callers never alias live rosters.
func (r *Registry) List() map[string]activity.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listed := make(map[string]activity.Activity, len(r.activities))
	for name, act := range r.activities {
		listed[name] = act.Clone()
	}
	return listed
}

// Get returns a deep copy of the named activity.
func (r *Registry) Get(name string) (activity.Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	act, ok := r.activities[strings.TrimSpace(name)]
	if !ok {
		return activity.Activity{}, false
	}
	return act.Clone(), true
}

// Signup enrolls a student email in the named activity. It fails with
// activity.ErrNotFound for unknown names and activity.ErrAlreadySignedUp
// for duplicate enrollment.
func (r *Registry) Signup(name, email string) error {
	email, err := activity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	act, ok := r.activities[name]
	if !ok {
		return activity.ErrNotFound
	}
	if act.HasParticipant(email) {
		return activity.ErrAlreadySignedUp
	}
	act.Participants = append(act.Participants, email)
	r.activities[name] = act
	return nil
}

// Unregister removes a student email from the named activity. It fails with
// activity.ErrNotFound for unknown names and activity.ErrNotSignedUp when
// the student is not on the roster.
func (r *Registry) Unregister(name, email string) error {
	email, err := activity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	act, ok := r.activities[name]
	if !ok {
		return activity.ErrNotFound
	}
	if !act.HasParticipant(email) {
		return activity.ErrNotSignedUp
	}
	remaining := make([]string, 0, len(act.Participants)-1)
	for _, participant := range act.Participants {
		if participant != email {
			remaining = append(remaining, participant)
		}
	}
	act.Participants = remaining
	r.activities[name] = act
	return nil
}

func fromSeed(seed []activity.Activity) map[string]activity.Activity {
	activities := make(map[string]activity.Activity, len(seed))
	for _, act := range seed {
		activities[act.Name] = act.Clone()
	}
	return activities
}

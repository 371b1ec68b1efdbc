// internal/form/controller.go
package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/javajoker/dukan-admin/internal/session"
)

var (
	ErrNoDraft      = errors.New("no draft in progress")
	ErrBusy         = errors.New("draft is being submitted")
	ErrNoIdentity   = errors.New("edit requires an entity with an id")
	ErrUnknownField = errors.New("unknown form field")
)

type State int

const (
	StateIdle State = iota
	StateCreating
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCreating:
		return "creating"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Draft is an unsaved entity held by a Controller. Clone must return a deep
// copy so a snapshot taken for submission cannot alias the live draft.
type Draft[D any] interface {
	ID() string
	Set(key string, value interface{}) error
	SetImage(url string)
	Validate() error
	Clone() D
}

// Submitter sends a validated draft to the shop API.
type Submitter[D any] interface {
	Create(ctx context.Context, sess *session.Session, draft D) error
	Update(ctx context.Context, sess *session.Session, id string, draft D) error
}

// Controller owns at most one draft. It never touches entity lists; callers
// update those after Submit returns successfully.
type Controller[D Draft[D]] struct {
	mu        sync.Mutex
	state     State
	mode      State
	draft     D
	hasDraft  bool
	blank     func() D
	submitter Submitter[D]
	images    ImageStore
}

func NewController[D Draft[D]](blank func() D, submitter Submitter[D], images ImageStore) *Controller[D] {
	if images == nil {
		images = NewDataURLStore(DefaultMaxImageSize)
	}
	return &Controller[D]{
		blank:     blank,
		submitter: submitter,
		images:    images,
	}
}

func (c *Controller[D]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns a copy of the current draft.
func (c *Controller[D]) Draft() (D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasDraft {
		var zero D
		return zero, false
	}
	return c.draft.Clone(), true
}

// New starts a blank draft, discarding any draft that was not submitted.
func (c *Controller[D]) New() (D, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		var zero D
		return zero, ErrBusy
	}
	c.setDraft(c.blank(), StateCreating)
	return c.draft.Clone(), nil
}

// Edit loads an existing entity's draft. The draft must carry an id.
func (c *Controller[D]) Edit(draft D) error {
	if draft.ID() == "" {
		return ErrNoIdentity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrBusy
	}
	c.setDraft(draft.Clone(), StateEditing)
	return nil
}

func (c *Controller[D]) SetField(key string, value interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.editable(); err != nil {
		return err
	}

	// apply to a copy so a rejected value leaves the draft untouched
	next := c.draft.Clone()
	if err := next.Set(key, value); err != nil {
		return err
	}
	c.draft = next
	return nil
}

// SetImage stores the uploaded file and merges the resulting URL into the
// draft. The draft holds the image before SetImage returns, so a following
// Submit always sees it.
func (c *Controller[D]) SetImage(ctx context.Context, filename string, r io.Reader) error {
	if err := c.checkEditable(); err != nil {
		return err
	}

	url, err := c.images.Put(ctx, filename, r)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the draft may have been cancelled or submitted while the image was stored
	if err := c.editable(); err != nil {
		return err
	}
	c.draft.SetImage(url)
	return nil
}

// Submit validates the draft and sends it. On failure the draft is kept as it
// was and the controller returns to creating or editing. On success the draft
// is discarded and the submitted snapshot is returned.
func (c *Controller[D]) Submit(ctx context.Context, sess *session.Session) (D, error) {
	var zero D

	c.mu.Lock()
	if err := c.editable(); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	if err := c.draft.Validate(); err != nil {
		c.mu.Unlock()
		return zero, err
	}
	snapshot := c.draft.Clone()
	mode := c.mode
	c.state = StateSubmitting
	c.mu.Unlock()

	var err error
	if mode == StateEditing {
		err = c.submitter.Update(ctx, sess, snapshot.ID(), snapshot)
	} else {
		err = c.submitter.Create(ctx, sess, snapshot)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = mode
		return zero, err
	}
	c.reset()
	return snapshot, nil
}

// Cancel discards the draft. It is the edit-mode spelling of Clear.
func (c *Controller[D]) Cancel() error {
	return c.Clear()
}

func (c *Controller[D]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrBusy
	}
	c.reset()
	return nil
}

func (c *Controller[D]) setDraft(d D, mode State) {
	c.draft = d
	c.hasDraft = true
	c.mode = mode
	c.state = mode
}

func (c *Controller[D]) reset() {
	var zero D
	c.draft = zero
	c.hasDraft = false
	c.mode = StateIdle
	c.state = StateIdle
}

func (c *Controller[D]) checkEditable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editable()
}

// editable must be called with mu held.
func (c *Controller[D]) editable() error {
	switch c.state {
	case StateSubmitting:
		return ErrBusy
	case StateIdle:
		return ErrNoDraft
	}
	return nil
}

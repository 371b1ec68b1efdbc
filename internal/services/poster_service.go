// internal/services/poster_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/form"
	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/search"
	"github.com/javajoker/dukan-admin/internal/session"
	"github.com/javajoker/dukan-admin/internal/store"
)

var (
	ErrPosterNotFound = errors.New("poster not found")
	ErrUnknownKind    = errors.New("unknown poster kind")
)

type PosterAPI interface {
	GetPosters(ctx context.Context) (*models.Posters, error)
	CreatePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, payload models.PosterPayload) error
	UpdatePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, id string, payload models.PosterPayload) error
	DeletePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, id string) error
}

// PosterService manages category tiles and home-page slides. Both lists come
// from one GET /api/getPosters call.
type PosterService struct {
	client PosterAPI
	stores map[models.PosterKind]*store.ListStore[models.Poster]
	forms  map[models.PosterKind]*form.Pool[*form.PosterDraft]
}

func NewPosterService(client PosterAPI, images form.ImageStore) *PosterService {
	s := &PosterService{
		client: client,
		stores: make(map[models.PosterKind]*store.ListStore[models.Poster]),
		forms:  make(map[models.PosterKind]*form.Pool[*form.PosterDraft]),
	}
	for _, kind := range []models.PosterKind{models.PosterKindCategory, models.PosterKindSlide} {
		submitter := &posterSubmitter{client: client, kind: kind}
		s.stores[kind] = store.New[models.Poster](posterID, nil)
		s.forms[kind] = form.NewPool(func() *form.Controller[*form.PosterDraft] {
			return form.NewController(form.NewPosterDraft, form.Submitter[*form.PosterDraft](submitter), images)
		})
	}
	return s
}

func posterID(p models.Poster) string {
	return p.ID
}

func (s *PosterService) Refresh(ctx context.Context) error {
	posters, err := s.client.GetPosters(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch posters")
		return err
	}

	s.stores[models.PosterKindCategory].Dispatch(store.Loaded(posters.Categories))
	s.stores[models.PosterKindSlide].Dispatch(store.Loaded(posters.Slides))
	return nil
}

// Sync fetches both lists when force is set or when no fetch has succeeded yet.
func (s *PosterService) Sync(ctx context.Context, force bool) error {
	if !force && s.stores[models.PosterKindCategory].Loaded() && s.stores[models.PosterKindSlide].Loaded() {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *PosterService) Search(kind models.PosterKind, query string) ([]models.Poster, error) {
	st, err := s.store(kind)
	if err != nil {
		return nil, err
	}
	return search.Filter(st.Items(), query, search.PosterFields), nil
}

func (s *PosterService) Get(kind models.PosterKind, id string) (models.Poster, error) {
	st, err := s.store(kind)
	if err != nil {
		return models.Poster{}, err
	}
	p, ok := st.Get(id)
	if !ok {
		return models.Poster{}, fmt.Errorf("%w: %s %s", ErrPosterNotFound, kind, id)
	}
	return p, nil
}

func (s *PosterService) Delete(ctx context.Context, sess *session.Session, kind models.PosterKind, id string) error {
	st, err := s.store(kind)
	if err != nil {
		return err
	}
	if err := s.client.DeletePoster(ctx, sess, kind, id); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"kind":      kind,
			"poster_id": id,
		}).Warn("Failed to delete poster")
		return err
	}
	st.Remove(id)
	return nil
}

func (s *PosterService) Form(sess *session.Session, kind models.PosterKind) (*form.Controller[*form.PosterDraft], error) {
	pool, ok := s.forms[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return pool.Get(sess.Key()), nil
}

func (s *PosterService) StartCreate(sess *session.Session, kind models.PosterKind) (*form.PosterDraft, error) {
	c, err := s.Form(sess, kind)
	if err != nil {
		return nil, err
	}
	return c.New()
}

func (s *PosterService) StartEdit(sess *session.Session, kind models.PosterKind, id string) (*form.PosterDraft, error) {
	p, err := s.Get(kind, id)
	if err != nil {
		return nil, err
	}
	c, err := s.Form(sess, kind)
	if err != nil {
		return nil, err
	}
	if err := c.Edit(form.PosterDraftFrom(p)); err != nil {
		return nil, err
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *PosterService) SetFields(sess *session.Session, kind models.PosterKind, fields map[string]interface{}) (*form.PosterDraft, error) {
	c, err := s.Form(sess, kind)
	if err != nil {
		return nil, err
	}
	for _, key := range sortedKeys(fields) {
		if err := c.SetField(key, fields[key]); err != nil {
			return nil, err
		}
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *PosterService) SetImage(ctx context.Context, sess *session.Session, kind models.PosterKind, filename string, r io.Reader) (*form.PosterDraft, error) {
	c, err := s.Form(sess, kind)
	if err != nil {
		return nil, err
	}
	if err := c.SetImage(ctx, filename, r); err != nil {
		return nil, err
	}
	d, _ := c.Draft()
	return d, nil
}

func (s *PosterService) Cancel(sess *session.Session, kind models.PosterKind) error {
	c, err := s.Form(sess, kind)
	if err != nil {
		return err
	}
	return c.Cancel()
}

// Submit sends the caller's draft and re-fetches both lists on success.
func (s *PosterService) Submit(ctx context.Context, sess *session.Session, kind models.PosterKind) (models.PosterPayload, error) {
	c, err := s.Form(sess, kind)
	if err != nil {
		return models.PosterPayload{}, err
	}
	submitted, err := c.Submit(ctx, sess)
	if err != nil {
		return models.PosterPayload{}, err
	}
	s.Refresh(ctx)
	return submitted.Payload()
}

func (s *PosterService) store(kind models.PosterKind) (*store.ListStore[models.Poster], error) {
	st, ok := s.stores[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return st, nil
}

type posterSubmitter struct {
	client PosterAPI
	kind   models.PosterKind
}

func (p *posterSubmitter) Create(ctx context.Context, sess *session.Session, d *form.PosterDraft) error {
	payload, err := d.Payload()
	if err != nil {
		return err
	}
	return p.client.CreatePoster(ctx, sess, p.kind, payload)
}

func (p *posterSubmitter) Update(ctx context.Context, sess *session.Session, id string, d *form.PosterDraft) error {
	payload, err := d.Payload()
	if err != nil {
		return err
	}
	return p.client.UpdatePoster(ctx, sess, p.kind, id, payload)
}

var _ PosterAPI = (*api.Client)(nil)

// internal/api/posters.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/javajoker/dukan-admin/internal/models"
	"github.com/javajoker/dukan-admin/internal/session"
)

func (c *Client) GetPosters(ctx context.Context) (*models.Posters, error) {
	var posters models.Posters
	if err := c.Do(ctx, http.MethodGet, "/api/getPosters", nil, nil, &posters); err != nil {
		return nil, err
	}
	return &posters, nil
}

func (c *Client) CreatePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, payload models.PosterPayload) error {
	path, err := posterPath(kind, "")
	if err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPost, path, payload, sess, nil)
}

func (c *Client) UpdatePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, id string, payload models.PosterPayload) error {
	path, err := posterPath(kind, id)
	if err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPut, path, payload, sess, nil)
}

func (c *Client) DeletePoster(ctx context.Context, sess *session.Session, kind models.PosterKind, id string) error {
	path, err := posterPath(kind, id)
	if err != nil {
		return err
	}
	return c.Do(ctx, http.MethodDelete, path, nil, sess, nil)
}

func posterPath(kind models.PosterKind, id string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown poster kind %q", ErrInvalidPath, kind)
	}
	path := "/api/" + string(kind)
	if id != "" {
		path += "/" + escape(id)
	}
	return path, nil
}

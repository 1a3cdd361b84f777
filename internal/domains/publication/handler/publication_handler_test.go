package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publisher-backend/internal/domains/media"
	"publisher-backend/internal/domains/publication"
)

type stubService struct {
	createFn  func(context.Context, publication.CreatePublicationRequest) (*publication.Publication, error)
	findAllFn func(context.Context, publication.FindFilter) ([]publication.Publication, error)
	findOneFn func(context.Context, int64) (*publication.Publication, error)
	updateFn  func(context.Context, int64, publication.UpdatePublicationRequest) (*publication.Publication, error)
	removeFn  func(context.Context, int64) error
}

func (s *stubService) Create(ctx context.Context, req publication.CreatePublicationRequest) (*publication.Publication, error) {
	return s.createFn(ctx, req)
}
func (s *stubService) FindAll(ctx context.Context, filter publication.FindFilter) ([]publication.Publication, error) {
	return s.findAllFn(ctx, filter)
}
func (s *stubService) FindOne(ctx context.Context, id int64) (*publication.Publication, error) {
	return s.findOneFn(ctx, id)
}
func (s *stubService) FindOneByMediaID(context.Context, int64) (*publication.Publication, error) {
	panic("unexpected call")
}
func (s *stubService) FindOneByPostID(context.Context, int64) (*publication.Publication, error) {
	panic("unexpected call")
}
func (s *stubService) Update(ctx context.Context, id int64, req publication.UpdatePublicationRequest) (*publication.Publication, error) {
	return s.updateFn(ctx, id, req)
}
func (s *stubService) Remove(ctx context.Context, id int64) error { return s.removeFn(ctx, id) }

func setupRouter(svc publication.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPublicationHandler(svc)

	router := gin.New()
	router.POST("/publications", h.Create)
	router.GET("/publications", h.FindAll)
	router.GET("/publications/:id", h.FindOne)
	router.PATCH("/publications/:id", h.Update)
	router.DELETE("/publications/:id", h.Remove)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPublicationHandlerCreate(t *testing.T) {
	t.Run("dangling reference is a 404", func(t *testing.T) {
		router := setupRouter(&stubService{
			createFn: func(_ context.Context, _ publication.CreatePublicationRequest) (*publication.Publication, error) {
				return nil, media.ErrMediaNotFound
			},
		})

		w := doRequest(router, http.MethodPost, "/publications",
			`{"mediaId":99,"postId":1,"date":"2035-08-21T13:25:17.352Z"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-positive mediaId fails validation", func(t *testing.T) {
		router := setupRouter(&stubService{
			createFn: func(_ context.Context, _ publication.CreatePublicationRequest) (*publication.Publication, error) {
				t.Fatal("service must not be called on invalid input")
				return nil, nil
			},
		})

		w := doRequest(router, http.MethodPost, "/publications",
			`{"mediaId":0,"postId":1,"date":"2035-08-21T13:25:17.352Z"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		router := setupRouter(&stubService{
			createFn: func(_ context.Context, req publication.CreatePublicationRequest) (*publication.Publication, error) {
				return &publication.Publication{ID: 1, MediaID: req.MediaID, PostID: req.PostID, Date: req.Date}, nil
			},
		})

		w := doRequest(router, http.MethodPost, "/publications",
			`{"mediaId":1,"postId":2,"date":"2035-08-21T13:25:17.352Z"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"mediaId":1`)
	})
}

func TestPublicationHandlerFindAllQuery(t *testing.T) {
	t.Run("published and after are forwarded", func(t *testing.T) {
		var got publication.FindFilter
		router := setupRouter(&stubService{
			findAllFn: func(_ context.Context, filter publication.FindFilter) ([]publication.Publication, error) {
				got = filter
				return []publication.Publication{}, nil
			},
		})

		w := doRequest(router, http.MethodGet, "/publications?published=false&after=2022-06-06", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.Published)
		assert.False(t, *got.Published)
		require.NotNil(t, got.After)
		assert.True(t, got.After.Equal(time.Date(2022, 6, 6, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("absent params leave the filter empty", func(t *testing.T) {
		var got publication.FindFilter
		router := setupRouter(&stubService{
			findAllFn: func(_ context.Context, filter publication.FindFilter) ([]publication.Publication, error) {
				got = filter
				return []publication.Publication{}, nil
			},
		})

		w := doRequest(router, http.MethodGet, "/publications", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, got.Published)
		assert.Nil(t, got.After)
	})

	t.Run("published must be a boolean literal", func(t *testing.T) {
		router := setupRouter(&stubService{})
		w := doRequest(router, http.MethodGet, "/publications?published=banana", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("after must be a date", func(t *testing.T) {
		router := setupRouter(&stubService{})
		w := doRequest(router, http.MethodGet, "/publications?after=not-a-date", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPublicationHandlerUpdate(t *testing.T) {
	t.Run("past publication is forbidden", func(t *testing.T) {
		router := setupRouter(&stubService{
			updateFn: func(_ context.Context, _ int64, _ publication.UpdatePublicationRequest) (*publication.Publication, error) {
				return nil, publication.ErrPublicationPublished
			},
		})

		w := doRequest(router, http.MethodPatch, "/publications/1",
			`{"mediaId":1,"postId":1,"date":"2035-08-21T13:25:17.352Z"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router := setupRouter(&stubService{
			updateFn: func(_ context.Context, _ int64, _ publication.UpdatePublicationRequest) (*publication.Publication, error) {
				return nil, publication.ErrPublicationNotFound
			},
		})

		w := doRequest(router, http.MethodPatch, "/publications/99",
			`{"mediaId":1,"postId":1,"date":"2035-08-21T13:25:17.352Z"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPublicationHandlerRemove(t *testing.T) {
	// Deleting a past publication is allowed; only absence is an error.
	router := setupRouter(&stubService{
		removeFn: func(_ context.Context, _ int64) error { return nil },
	})

	w := doRequest(router, http.MethodDelete, "/publications/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

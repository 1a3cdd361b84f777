package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publisher-backend/internal/domains/post"
)

// fakePostRepository is an in-memory post.Repository.
type fakePostRepository struct {
	nextID int64
	posts  map[int64]post.Post
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{nextID: 1, posts: make(map[int64]post.Post)}
}

func (r *fakePostRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	created := post.Post{ID: r.nextID, Title: p.Title, Text: p.Text, Image: p.Image}
	r.posts[created.ID] = created
	r.nextID++
	return &created, nil
}

func (r *fakePostRepository) FindAll(_ context.Context) ([]post.Post, error) {
	ids := make([]int64, 0, len(r.posts))
	for id := range r.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]post.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.posts[id])
	}
	return out, nil
}

func (r *fakePostRepository) FindByID(_ context.Context, id int64) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePostRepository) Update(_ context.Context, id int64, p *post.Post) (*post.Post, error) {
	updated := post.Post{ID: id, Title: p.Title, Text: p.Text, Image: p.Image}
	r.posts[id] = updated
	return &updated, nil
}

func (r *fakePostRepository) Delete(_ context.Context, id int64) error {
	delete(r.posts, id)
	return nil
}

// fakePublicationChecker reports references from a fixed set of post ids.
type fakePublicationChecker struct {
	referenced map[int64]bool
}

func (f *fakePublicationChecker) ExistsByPostID(_ context.Context, postID int64) (bool, error) {
	return f.referenced[postID], nil
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(newFakePostRepository(), &fakePublicationChecker{})

	t.Run("without image", func(t *testing.T) {
		created, err := svc.Create(ctx, post.CreatePostRequest{Title: "Why you should have a guinea pig?", Text: "They are so cute!"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Nil(t, created.Image)
	})

	t.Run("with image", func(t *testing.T) {
		image := "https://picsum.photos/200"
		created, err := svc.Create(ctx, post.CreatePostRequest{Title: "Guinea pigs", Text: "Still cute", Image: &image})
		require.NoError(t, err)
		require.NotNil(t, created.Image)
		assert.Equal(t, image, *created.Image)
	})
}

func TestPostServiceFindOne(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(newFakePostRepository(), &fakePublicationChecker{})

	created, err := svc.Create(ctx, post.CreatePostRequest{Title: "t", Text: "x"})
	require.NoError(t, err)

	found, err := svc.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = svc.FindOne(ctx, 999)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestPostServiceFindAll(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(newFakePostRepository(), &fakePublicationChecker{})

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, post.CreatePostRequest{Title: title, Text: "body"})
		require.NoError(t, err)
	}

	posts, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i, p := range posts {
		assert.Equal(t, int64(i+1), p.ID, "posts must be ordered by ascending id")
	}
}

func TestPostServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewPostService(newFakePostRepository(), &fakePublicationChecker{})

	_, err := svc.Update(ctx, 999, post.UpdatePostRequest{Title: "t", Text: "x"})
	assert.ErrorIs(t, err, post.ErrPostNotFound)

	created, err := svc.Create(ctx, post.CreatePostRequest{Title: "t", Text: "x"})
	require.NoError(t, err)

	// No uniqueness rule on posts: identical content on another post is fine.
	_, err = svc.Create(ctx, post.CreatePostRequest{Title: "t", Text: "x"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, post.UpdatePostRequest{Title: "new title", Text: "new text"})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new text", updated.Text)
}

func TestPostServiceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc := NewPostService(newFakePostRepository(), &fakePublicationChecker{})
		err := svc.Remove(ctx, 999)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("forbidden while referenced, allowed after", func(t *testing.T) {
		refs := &fakePublicationChecker{referenced: map[int64]bool{1: true}}
		svc := NewPostService(newFakePostRepository(), refs)

		_, err := svc.Create(ctx, post.CreatePostRequest{Title: "t", Text: "x"})
		require.NoError(t, err)

		err = svc.Remove(ctx, 1)
		require.ErrorIs(t, err, post.ErrPostInUse)

		refs.referenced[1] = false

		err = svc.Remove(ctx, 1)
		require.NoError(t, err)

		_, err = svc.FindOne(ctx, 1)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

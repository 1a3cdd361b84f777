package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"publisher-backend/internal/config"
	"publisher-backend/internal/infrastructure/database"

	"publisher-backend/internal/domains/media"
	mediaHandler "publisher-backend/internal/domains/media/handler"
	mediaRepository "publisher-backend/internal/domains/media/repository"
	mediaService "publisher-backend/internal/domains/media/service"

	"publisher-backend/internal/domains/post"
	postHandler "publisher-backend/internal/domains/post/handler"
	postRepository "publisher-backend/internal/domains/post/repository"
	postService "publisher-backend/internal/domains/post/service"

	"publisher-backend/internal/domains/publication"
	publicationHandler "publisher-backend/internal/domains/publication/handler"
	publicationRepository "publisher-backend/internal/domains/publication/repository"
	publicationService "publisher-backend/internal/domains/publication/service"
)

// Container holds the full dependency graph: config, database, repositories,
// services, handlers. Everything is a singleton built once at startup.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	MediaRepo       media.Repository
	PostRepo        post.Repository
	PublicationRepo publication.Repository

	MediaService       media.Service
	PostService        post.Service
	PublicationService publication.Service

	MediaHandler       *mediaHandler.MediaHandler
	PostHandler        *postHandler.PostHandler
	PublicationHandler *publicationHandler.PublicationHandler
}

// publicationRefs mediates the cyclic dependency between the three services:
// media/post deletion guards need the publication service, which itself is
// built on top of them. The mediator is handed to the media and post services
// at construction and its target is set once the publication service exists,
// so no service ever sees a partially built peer.
type publicationRefs struct {
	publications publication.Service
}

func (r *publicationRefs) ExistsByMediaID(ctx context.Context, mediaID int64) (bool, error) {
	p, err := r.publications.FindOneByMediaID(ctx, mediaID)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

func (r *publicationRefs) ExistsByPostID(ctx context.Context, postID int64) (bool, error) {
	p, err := r.publications.FindOneByPostID(ctx, postID)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// NewContainer builds the dependency graph in order: config, database,
// repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := c.DB.Migrate(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	c.MediaRepo = mediaRepository.NewPostgresRepository(c.DB.Pool)
	c.PostRepo = postRepository.NewPostgresRepository(c.DB.Pool)
	c.PublicationRepo = publicationRepository.NewPostgresRepository(c.DB.Pool)

	refs := &publicationRefs{}
	c.MediaService = mediaService.NewMediaService(c.MediaRepo, refs)
	c.PostService = postService.NewPostService(c.PostRepo, refs)
	c.PublicationService = publicationService.NewPublicationService(c.PublicationRepo, c.MediaService, c.PostService)
	refs.publications = c.PublicationService

	c.MediaHandler = mediaHandler.NewMediaHandler(c.MediaService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.PublicationHandler = publicationHandler.NewPublicationHandler(c.PublicationService)

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")
	return c, nil
}

// Cleanup releases held resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}

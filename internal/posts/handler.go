package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/nmilenkovic/nmilenkovic.com/internal/middleware"
	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"
	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/tracing"
	"github.com/nmilenkovic/nmilenkovic.com/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=handler.go -destination=service_mocks_test.go -package=posts

type TagPostsResponse struct {
	Tag   string         `json:"tag"`
	Posts []BlogPostMeta `json:"posts"`
	Total int            `json:"total"`
}

type TagsResponse struct {
	Tags []string `json:"tags"`
}

type postsService interface {
	Page(ctx context.Context, page, size int) PaginatedBlogPosts
	BySlug(ctx context.Context, slug string) (BlogPost, error)
	ByTag(ctx context.Context, tag string) []BlogPostMeta
	Tags(ctx context.Context) []string
}

type Handler struct {
	service         postsService
	defaultPageSize int
}

func NewHandler(service postsService, defaultPageSize int) *Handler {
	return &Handler{
		service:         service,
		defaultPageSize: defaultPageSize,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	blogRouter := mainRouter.PathPrefix("/blog").Subrouter()
	blogRouter.HandleFunc("/posts", handler.handlePosts).Methods("GET", "OPTIONS").Name("blog-posts")
	blogRouter.HandleFunc("/page/{page}/size/{size}", handler.handleGetPage).Methods("GET", "OPTIONS").Name("blog-page")
	blogRouter.HandleFunc("/post/{slug}", handler.handleGetBySlug).Methods("GET", "OPTIONS").Name("blog-post")
	blogRouter.HandleFunc("/tag/{tag}", handler.handleGetByTag).Methods("GET", "OPTIONS").Name("blog-tag")
	blogRouter.HandleFunc("/tags", handler.handleGetTags).Methods("GET", "OPTIONS").Name("blog-tags")

	// keep scrapers from hammering the upstream through us
	blogRouter.Use(middleware.RateLimit(rateLimiter, "blog", allowedPerMin, metricsManager))
}

// handlePosts serves the first page with optional ?page= and ?size= overrides
func (handler *Handler) handlePosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.posts")
	defer span.End()

	page, size := 1, handler.defaultPageSize
	var err error

	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			pkg.WriteJSONError(w, "invalid parameter <page>", http.StatusBadRequest)
			return
		}
	}
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			pkg.WriteJSONError(w, "invalid parameter <size>", http.StatusBadRequest)
			return
		}
	}

	handler.writePostsPage(ctx, w, page, size)
}

func (handler *Handler) handleGetPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.page")
	defer span.End()

	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Errorf("handle get blog page, <page> param: %s", err)
		pkg.WriteJSONError(w, "invalid parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Errorf("handle get blog page, <size> param: %s", err)
		pkg.WriteJSONError(w, "invalid parameter <size>", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	handler.writePostsPage(ctx, w, page, size)
}

func (handler *Handler) writePostsPage(ctx context.Context, w http.ResponseWriter, page, size int) {
	if page < 1 {
		pkg.WriteJSONError(w, "invalid page (has to be a positive value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		pkg.WriteJSONError(w, "invalid size (has to be a positive value)", http.StatusBadRequest)
		return
	}

	log.Tracef("get blog posts - page %d size %d", page, size)

	postsPage := handler.service.Page(ctx, page, size)

	postsPageJson, err := json.Marshal(postsPage)
	if err != nil {
		log.Errorf("marshal blog posts page: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, postsPageJson)
}

func (handler *Handler) handleGetBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.bySlug")
	defer span.End()

	slug := mux.Vars(r)["slug"]
	if slug == "" {
		pkg.WriteJSONError(w, "invalid parameter <slug>", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("slug", slug))

	post, err := handler.service.BySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			log.Tracef("blog post [%s] not found", slug)
			pkg.WriteJSONError(w, "post not found", http.StatusNotFound)
			return
		}
		log.Errorf("get blog post [%s]: %s", slug, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	postJson, err := json.Marshal(post)
	if err != nil {
		log.Errorf("marshal blog post [%s]: %s", slug, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, postJson)
}

func (handler *Handler) handleGetByTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.byTag")
	defer span.End()

	tag := mux.Vars(r)["tag"]
	if tag == "" {
		pkg.WriteJSONError(w, "invalid parameter <tag>", http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("tag", tag))

	taggedPosts := handler.service.ByTag(ctx, tag)

	tagRespJson, err := json.Marshal(TagPostsResponse{
		Tag:   tag,
		Posts: taggedPosts,
		Total: len(taggedPosts),
	})
	if err != nil {
		log.Errorf("marshal blog posts for tag [%s]: %s", tag, err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, tagRespJson)
}

func (handler *Handler) handleGetTags(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "postsHandler.tags")
	defer span.End()

	tags := handler.service.Tags(ctx)

	tagsJson, err := json.Marshal(TagsResponse{Tags: tags})
	if err != nil {
		log.Errorf("marshal blog tags: %s", err)
		pkg.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, tagsJson)
}

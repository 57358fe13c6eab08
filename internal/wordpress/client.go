package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/metrics"
	"github.com/nmilenkovic/nmilenkovic.com/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// example API call
// https://cms.nmilenkovic.com/wp-json/wp/v2/posts?per_page=100&_embed

const (
	postsCacheKey = "posts::all"

	defaultCacheTTL      = 5 * time.Minute
	defaultFetchAttempts = 3
	defaultRetryDelay    = time.Second
	defaultFetchTimeout  = 10 * time.Second
)

type Client struct {
	apiBaseURL string
	httpClient *http.Client
	cache      *freecache.Cache

	cacheTTL      time.Duration
	fetchAttempts int
	retryDelay    time.Duration
	fetchTimeout  time.Duration

	metrics *metrics.Manager
}

type NewClientParams struct {
	APIBaseURL    string
	HTTPClient    *http.Client
	CacheTTL      time.Duration
	FetchAttempts int
	RetryDelay    time.Duration
	FetchTimeout  time.Duration
	Metrics       *metrics.Manager
}

func NewClient(params NewClientParams) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	c := &Client{
		apiBaseURL:    params.APIBaseURL,
		httpClient:    params.HTTPClient,
		cache:         freecache.NewCache(cacheSize),
		cacheTTL:      params.CacheTTL,
		fetchAttempts: params.FetchAttempts,
		retryDelay:    params.RetryDelay,
		fetchTimeout:  params.FetchTimeout,
		metrics:       params.Metrics,
	}

	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = defaultCacheTTL
	}
	if c.fetchAttempts <= 0 {
		c.fetchAttempts = defaultFetchAttempts
	}
	if c.retryDelay <= 0 {
		c.retryDelay = defaultRetryDelay
	}
	if c.fetchTimeout <= 0 {
		c.fetchTimeout = defaultFetchTimeout
	}

	return c
}

// FetchPosts returns all posts from the WordPress API. Responses are kept in
// an in-process cache for the configured TTL, so within that window the
// upstream is not contacted at all. The whole snapshot is replaced on refetch.
func (c *Client) FetchPosts(ctx context.Context) (posts []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "wordpressClient.fetchPosts")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("fetched %d posts", len(posts)))
		}
	}()

	if postsBytes, cacheErr := c.cache.Get([]byte(postsCacheKey)); cacheErr == nil {
		log.Tracef("found wordpress posts in cache")
		span.SetAttributes(attribute.Bool("posts.from-cache", true))
		if c.metrics != nil {
			c.metrics.CounterPostsCacheHits.Inc()
		}
		if err = json.Unmarshal(postsBytes, &posts); err == nil {
			return posts, nil
		}
		log.Errorf("failed to unmarshal cached wordpress posts: %s", err)
		// fall through and refetch from the API
	}

	span.SetAttributes(attribute.Bool("posts.from-cache", false))
	if c.metrics != nil {
		c.metrics.CounterPostsCacheMisses.Inc()
	}

	postsBytes, err := c.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(postsBytes, &posts); err != nil {
		return nil, fmt.Errorf("unmarshal wordpress posts response: %w", err)
	}

	if err := c.cache.Set([]byte(postsCacheKey), postsBytes, int(c.cacheTTL.Seconds())); err != nil {
		log.Errorf("failed to write wordpress posts cache: %s", err)
	} else {
		log.Debugf("wordpress posts cache set, %d posts", len(posts))
	}

	return posts, nil
}

// fetchWithRetry tries the WordPress API a fixed number of times,
// waiting attempt * retryDelay between attempts (linear backoff)
func (c *Client) fetchWithRetry(ctx context.Context) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.fetchAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(attempt-1) * c.retryDelay
			log.Debugf("wordpress fetch attempt %d/%d, backing off for %s", attempt, c.fetchAttempts, backoff)
			if c.metrics != nil {
				c.metrics.CounterUpstreamRetries.Inc()
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		postsBytes, err := c.fetchOnce(ctx)
		if err == nil {
			return postsBytes, nil
		}

		lastErr = err
		log.Errorf("wordpress fetch attempt %d/%d failed: %s", attempt, c.fetchAttempts, err)
	}

	return nil, fmt.Errorf("fetch wordpress posts failed after %d attempts: %w", c.fetchAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	if c.metrics != nil {
		c.metrics.CounterUpstreamFetches.Inc()
		defer func(begin time.Time) {
			c.metrics.HistUpstreamFetchDuration.Observe(time.Since(begin).Seconds())
		}(time.Now())
	}

	postsUrl := fmt.Sprintf("%s/wp-json/wp/v2/posts?per_page=100&_embed", c.apiBaseURL)
	log.Debugf("calling wordpress api: %s", postsUrl)

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, postsUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wordpress api returned status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read wordpress api response bytes: %w", err)
	}

	return respBytes, nil
}

// InvalidateCache drops the cached posts snapshot, the next
// FetchPosts call will hit the WordPress API again
func (c *Client) InvalidateCache() {
	c.cache.Del([]byte(postsCacheKey))
}

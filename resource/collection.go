// resource/collection.go
/* Package resource binds schemas to Jamf Pro collection endpoints. A Collection lists, fetches,
creates, updates and deletes the objects of one schema, sending full payloads on create and PUT
and changes-only payloads on PATCH. */
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/deploymenttheory/go-jamfpro-oapi/oapi"
	"github.com/patrickmn/go-cache"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize         = 100
	DefaultCacheTTL         = 5 * time.Minute
	DefaultFetchConcurrency = 5
)

// ErrNoIdentifier is returned when an operation needs the object's primary identifier and the
// object has none yet.
var ErrNoIdentifier = errors.New("object has no identifier")

// Connection sends one request and decodes the reply into out. *httpclient.Client satisfies it.
type Connection interface {
	DoRequest(ctx context.Context, method, endpoint string, body, out any) (*http.Response, error)
}

// Record is anything carrying an *oapi.Object: the Object itself or a generated wrapper.
type Record interface {
	OAPIObject() *oapi.Object
}

// Definition binds a schema to its endpoint.
type Definition struct {
	Schema *oapi.Schema
	// Path is the collection endpoint, e.g. /api/v1/buildings. Members live at Path/{id}.
	Path string
	// UpdateMethod is http.MethodPut (full payload) or http.MethodPatch (changes only).
	UpdateMethod string
	// PageSize for List; zero means DefaultPageSize.
	PageSize int
}

// ListOptions narrow a List call.
type ListOptions struct {
	Sort    []string // e.g. "name:asc"
	Filter  string   // RSQL, e.g. `name=="HQ"`
	Refresh bool     // bypass the list cache
}

// Collection performs CRUD for one Definition. T is the type handed back to callers, usually
// the generated wrapper for the schema.
type Collection[T Record] struct {
	conn        Connection
	def         Definition
	wrap        func(*oapi.Object) T
	sugar       *zap.SugaredLogger
	cache       *cache.Cache
	concurrency int
}

// Option configures a Collection.
type Option func(*collectionOptions)

type collectionOptions struct {
	cacheTTL    time.Duration
	concurrency int
}

// WithCacheTTL sets how long List results are reused.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *collectionOptions) { o.cacheTTL = ttl }
}

// WithFetchConcurrency sets how many requests FetchMany runs at once.
func WithFetchConcurrency(n int) Option {
	return func(o *collectionOptions) { o.concurrency = n }
}

// NewCollection returns a Collection for def. wrap turns parsed objects into T.
func NewCollection[T Record](conn Connection, def Definition, wrap func(*oapi.Object) T, sugar *zap.SugaredLogger, opts ...Option) *Collection[T] {
	o := collectionOptions{cacheTTL: DefaultCacheTTL, concurrency: DefaultFetchConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	if def.PageSize <= 0 {
		def.PageSize = DefaultPageSize
	}
	if def.UpdateMethod == "" {
		def.UpdateMethod = http.MethodPut
	}
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &Collection[T]{
		conn:        conn,
		def:         def,
		wrap:        wrap,
		sugar:       sugar.With("schema", def.Schema.Name()),
		cache:       cache.New(o.cacheTTL, 2*o.cacheTTL),
		concurrency: o.concurrency,
	}
}

// Definition returns the endpoint binding of the collection.
func (c *Collection[T]) Definition() Definition {
	return c.def
}

func (c *Collection[T]) memberPath(id string) string {
	return c.def.Path + "/" + url.PathEscape(id)
}

// List returns every object matching opts, reading all pages. The raw page items are cached
// per query until the TTL passes, a write goes through this collection, or opts.Refresh is
// set. Every call parses fresh, clean objects, so local edits never leak into the cache.
func (c *Collection[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	query := url.Values{}
	for _, s := range opts.Sort {
		query.Add("sort", s)
	}
	if opts.Filter != "" {
		query.Set("filter", opts.Filter)
	}
	key := query.Encode()

	if !opts.Refresh {
		if cached, ok := c.cache.Get(key); ok {
			c.sugar.Debugw("Using cached list", "query", key)
			return c.parseItems(cached.([]string))
		}
	}

	var items []string
	for page := 0; ; page++ {
		query.Set("page", strconv.Itoa(page))
		query.Set("page-size", strconv.Itoa(c.def.PageSize))

		var raw json.RawMessage
		if _, err := c.conn.DoRequest(ctx, http.MethodGet, c.def.Path+"?"+query.Encode(), nil, &raw); err != nil {
			return nil, err
		}

		body := gjson.ParseBytes(raw)
		results := body.Get("results")
		if body.IsArray() {
			results = body
		}

		pageItems := results.Array()
		for _, item := range pageItems {
			items = append(items, item.Raw)
		}

		if body.IsArray() || len(pageItems) == 0 || int64(len(items)) >= body.Get("totalCount").Int() {
			break
		}
	}

	out, err := c.parseItems(items)
	if err != nil {
		return nil, err
	}
	c.sugar.Debugw("Listed objects", "query", key, "count", len(out))
	c.cache.SetDefault(key, items)
	return out, nil
}

func (c *Collection[T]) parseItems(items []string) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		obj, err := c.parseItem(item)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (c *Collection[T]) parseItem(item string) (T, error) {
	var zero T
	if !gjson.Parse(item).IsObject() {
		return zero, fmt.Errorf("%s: list item is not an object: %s", c.def.Schema.Name(), item)
	}
	obj, err := oapi.ParseJSON(c.def.Schema, []byte(item))
	if err != nil {
		return zero, err
	}
	return c.wrap(obj), nil
}

// Fetch retrieves one object by identifier.
func (c *Collection[T]) Fetch(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, ErrNoIdentifier
	}

	var raw json.RawMessage
	if _, err := c.conn.DoRequest(ctx, http.MethodGet, c.memberPath(id), nil, &raw); err != nil {
		return zero, err
	}
	obj, err := oapi.ParseJSON(c.def.Schema, raw)
	if err != nil {
		return zero, err
	}
	return c.wrap(obj), nil
}

// FetchMany retrieves objects concurrently, returned in the order of ids. The first failure
// cancels the remaining requests.
func (c *Collection[T]) FetchMany(ctx context.Context, ids []string) ([]T, error) {
	out := make([]T, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			obj, err := c.Fetch(gctx, id)
			if err != nil {
				return fmt.Errorf("fetching %s %s: %w", c.def.Schema.Name(), id, err)
			}
			out[i] = obj
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create sends a new object to the server. Required properties are checked before any request
// is made. The identifier assigned by the server is stored on the object and its changes are
// cleared.
func (c *Collection[T]) Create(ctx context.Context, record T) error {
	obj := record.OAPIObject()
	if obj.Schema().Immutable() {
		return fmt.Errorf("%w: %s cannot be created", oapi.ErrImmutable, obj.Schema().Name())
	}
	if obj.ID() != "" {
		return fmt.Errorf("%s %s already exists", obj.Schema().Name(), obj.ID())
	}
	if err := obj.ValidateRequired(); err != nil {
		return err
	}

	var raw json.RawMessage
	if _, err := c.conn.DoRequest(ctx, http.MethodPost, c.def.Path, obj, &raw); err != nil {
		return err
	}

	if p, ok := c.def.Schema.PrimaryIdentifier(); ok {
		id := gjson.GetBytes(raw, p.Name)
		if !id.Exists() {
			return fmt.Errorf("%s: create response has no %s: %s", c.def.Schema.Name(), p.Name, string(raw))
		}
		var value any = id.Value()
		if id.Type == gjson.Number {
			value = json.Number(id.Raw)
		}
		if err := obj.ApplyServerValue(p.Name, value); err != nil {
			return err
		}
	}

	obj.ClearChanges()
	c.cache.Flush()
	c.sugar.Infow("Created object", "id", obj.ID())
	return nil
}

// Update saves the unsaved changes of an object. Clean objects and instances of immutable
// schemas are not sent. PATCH collections send only the changed properties, PUT collections
// the full payload.
func (c *Collection[T]) Update(ctx context.Context, record T) error {
	obj := record.OAPIObject()
	if obj.Schema().Immutable() {
		c.sugar.Debugw("Skipping update of immutable object", "id", obj.ID())
		return nil
	}
	if !obj.IsDirty() {
		c.sugar.Debugw("Object has no unsaved changes", "id", obj.ID())
		return nil
	}
	id := obj.ID()
	if id == "" {
		return ErrNoIdentifier
	}
	if err := obj.ValidateRequired(); err != nil {
		return err
	}

	var body any = obj
	if c.def.UpdateMethod == http.MethodPatch {
		body = obj.ChangesPayload()
	}
	if _, err := c.conn.DoRequest(ctx, c.def.UpdateMethod, c.memberPath(id), body, nil); err != nil {
		return err
	}

	obj.ClearChanges()
	c.cache.Flush()
	c.sugar.Infow("Updated object", "id", id, "method", c.def.UpdateMethod)
	return nil
}

// Delete removes the object with the given identifier.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoIdentifier
	}
	if _, err := c.conn.DoRequest(ctx, http.MethodDelete, c.memberPath(id), nil, nil); err != nil {
		return err
	}
	c.cache.Flush()
	c.sugar.Infow("Deleted object", "id", id)
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/visionfocus/focushours/internal/domain"
	"github.com/visionfocus/focushours/internal/platform/logger"
	"github.com/visionfocus/focushours/internal/schema"
	"github.com/visionfocus/focushours/internal/store"
)

// DefaultPrefix namespaces every key the repository writes.
const DefaultPrefix = "vfh_"

// DefaultMaxWishes bounds a planet's wish list.
const DefaultMaxWishes = 12

// Repository serializes every operation with a mutex: each call runs its
// read-modify-write against the store without interleaving with another call.
type Repository struct {
	mu     sync.Mutex
	kv     *store.Namespaced
	log    *slog.Logger
	schema *schema.Manager
	ready  bool

	prefix         string
	maxWishes      int
	strictWishRefs bool
	now            func() time.Time
	newID          func(kind string) string
	schemaOpts     []schema.Option
}

// Option configures a Repository.
type Option func(*Repository)

// WithPrefix overrides DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(r *Repository) { r.prefix = prefix }
}

// WithMaxWishes overrides DefaultMaxWishes.
func WithMaxWishes(n int) Option {
	return func(r *Repository) {
		if n > 0 {
			r.maxWishes = n
		}
	}
}

// WithStrictWishRefs makes focus records and board items that reference an
// unknown wish id fail with ErrWishNotFound instead of being kept as dangling
// references.
func WithStrictWishRefs(strict bool) Option {
	return func(r *Repository) { r.strictWishRefs = strict }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator overrides the identifier source. kind is "wish", "record"
// or "item".
func WithIDGenerator(gen func(kind string) string) Option {
	return func(r *Repository) { r.newID = gen }
}

// WithSchemaOptions passes options to the schema manager, for example
// registered upgrade steps.
func WithSchemaOptions(opts ...schema.Option) Option {
	return func(r *Repository) { r.schemaOpts = append(r.schemaOpts, opts...) }
}

func newUUID(kind string) string {
	return kind + "_" + uuid.NewString()
}

// New creates a Repository over kv. kv may be shared with unrelated data;
// the repository only touches keys under its prefix.
func New(kv store.KV, log *slog.Logger, opts ...Option) *Repository {
	if log == nil {
		log = slog.Default()
	}
	r := &Repository{
		log:       log.With("component", "repository"),
		prefix:    DefaultPrefix,
		maxWishes: DefaultMaxWishes,
		now:       time.Now,
		newID:     newUUID,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.kv = store.Namespace(kv, r.prefix)
	r.schema = schema.NewManager(r.kv, log,
		append([]schema.Option{schema.WithClock(r.now)}, r.schemaOpts...)...)
	return r
}

// Init brings the stored data to the current version. It is safe to call
// more than once.
func (r *Repository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.schema.EnsureCurrentVersion(ctx); err != nil {
		r.ready = false
		return err
	}
	r.ready = true
	return nil
}

// Ready reports whether Init has succeeded.
func (r *Repository) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ready
}

// MaxWishes returns the configured wish bound.
func (r *Repository) MaxWishes() int { return r.maxWishes }

// lock acquires the repository mutex and checks readiness. The returned
// function releases the mutex.
func (r *Repository) lock() (func(), error) {
	r.mu.Lock()
	if !r.ready {
		r.mu.Unlock()
		return func() {}, ErrNotInitialized
	}
	return r.mu.Unlock, nil
}

func (r *Repository) persistErr(ctx context.Context, op string, err error) error {
	logger.FromContextOrDefault(ctx, r.log).Error("storage operation failed",
		"operation", op,
		"error", err)
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// errUnchanged lets a planet mutation skip the write.
var errUnchanged = errors.New("unchanged")

func (r *Repository) loadPlanets(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if _, err := store.GetJSON(ctx, r.kv, schema.KeyPlanets, &planets); err != nil {
		return nil, r.persistErr(ctx, "load planets", err)
	}
	if planets == nil {
		planets = []domain.Planet{}
	}
	return planets, nil
}

func (r *Repository) savePlanets(ctx context.Context, planets []domain.Planet) error {
	if err := store.SetJSON(ctx, r.kv, schema.KeyPlanets, planets); err != nil {
		return r.persistErr(ctx, "save planets", err)
	}
	return nil
}

func findPlanet(planets []domain.Planet, year int) int {
	for i := range planets {
		if planets[i].Year == year {
			return i
		}
	}
	return -1
}

// mutatePlanet loads the planet list, applies fn to the planet for year and
// writes the whole list back in one write. The caller holds the lock.
func (r *Repository) mutatePlanet(ctx context.Context, year int, fn func(p *domain.Planet) error) (*domain.Planet, error) {
	planets, err := r.loadPlanets(ctx)
	if err != nil {
		return nil, err
	}
	i := findPlanet(planets, year)
	if i < 0 {
		return nil, ErrPlanetNotFound
	}

	p := &planets[i]
	if err := fn(p); err != nil {
		if errors.Is(err, errUnchanged) {
			return p, nil
		}
		return nil, err
	}
	if err := r.savePlanets(ctx, planets); err != nil {
		return nil, err
	}
	return p, nil
}

// planet returns the planet for year or nil. The caller holds the lock.
func (r *Repository) planet(ctx context.Context, year int) (*domain.Planet, error) {
	planets, err := r.loadPlanets(ctx)
	if err != nil {
		return nil, err
	}
	if i := findPlanet(planets, year); i >= 0 {
		return &planets[i], nil
	}
	return nil, nil
}

// checkWishRef enforces strict wish references. Empty ids are always allowed.
func (r *Repository) checkWishRef(p *domain.Planet, wishID string) error {
	if !r.strictWishRefs || wishID == "" || p.Wish(wishID) >= 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrWishNotFound, wishID)
}

// Clear removes every key under the repository prefix and writes fresh
// defaults, leaving foreign keys in a shared store untouched.
func (r *Repository) Clear(ctx context.Context) error {
	unlock, err := r.lock()
	defer unlock()
	if err != nil {
		return err
	}

	keys, err := r.kv.Keys(ctx, "")
	if err != nil {
		return r.persistErr(ctx, "list keys", err)
	}
	if err := r.kv.DeleteKeys(ctx, keys); err != nil {
		return r.persistErr(ctx, "clear", err)
	}
	logger.FromContextOrDefault(ctx, r.log).Info("storage cleared", "keys", len(keys))

	if _, err := r.schema.EnsureCurrentVersion(ctx); err != nil {
		r.ready = false
		return err
	}
	return nil
}

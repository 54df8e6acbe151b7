package gamedata

import (
	"context"
	"sync"
	"time"

	"craft-planner/core/procurement"
	"craft-planner/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Data is one loaded copy of the recipe graph and item catalog. It is read-only.
type Data struct {
	Graph    procurement.Graph
	Catalog  *Catalog
	LoadedAt time.Time
	// Skipped counts recipe entries and ingredient pairs dropped while decoding.
	Skipped int
}

// Source loads gamedata from object storage and shares it between features until the TTL
// lapses. Concurrent reloads collapse into one download.
type Source struct {
	client       storage.Client
	bucket       string
	recipeObject string
	itemObject   string
	ttl          time.Duration
	logger       *zap.Logger

	mu   sync.RWMutex
	data *Data
	sf   singleflight.Group
}

// NewSource creates a source over cfg's bucket and object names. A zero ttl keeps the first
// successful load forever.
func NewSource(client storage.Client, cfg storage.Config, ttl time.Duration, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		client:       client,
		bucket:       cfg.Bucket,
		recipeObject: cfg.RecipeObject,
		itemObject:   cfg.ItemObject,
		ttl:          ttl,
		logger:       logger,
	}
}

// NewStaticSource serves fixed data and never touches storage.
func NewStaticSource(g procurement.Graph, catalog *Catalog) *Source {
	return &Source{
		logger: zap.NewNop(),
		data:   &Data{Graph: g, Catalog: catalog, LoadedAt: time.Now()},
	}
}

// Load returns the current data, downloading it when absent or stale.
func (s *Source) Load(ctx context.Context) (*Data, error) {
	if d, ok := s.current(); ok {
		return d, nil
	}

	result, err, _ := s.sf.Do("gamedata", func() (interface{}, error) {
		if d, ok := s.current(); ok {
			return d, nil
		}

		d, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.data = d
		s.mu.Unlock()

		s.logger.Info("Gamedata loaded",
			zap.Int("recipes", len(d.Graph)),
			zap.Int("items", d.Catalog.Len()),
			zap.Int("skipped", d.Skipped),
		)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Data), nil
}

// Invalidate forces the next Load to download again.
func (s *Source) Invalidate() {
	if s.client == nil {
		return
	}
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
}

func (s *Source) current() (*Data, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, false
	}
	if s.client != nil && s.ttl > 0 && time.Since(s.data.LoadedAt) > s.ttl {
		return nil, false
	}
	return s.data, true
}

func (s *Source) fetch(ctx context.Context) (*Data, error) {
	var (
		graph   procurement.Graph
		catalog *Catalog
		skipped int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		graph, skipped, err = LoadRecipeGraph(gctx, s.client, s.bucket, s.recipeObject)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = LoadCatalog(gctx, s.client, s.bucket, s.itemObject)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Data{Graph: graph, Catalog: catalog, LoadedAt: time.Now(), Skipped: skipped}, nil
}

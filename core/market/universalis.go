package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"craft-planner/core/procurement"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// UniversalisClient is a PriceOracle backed by the Universalis market board API.
type UniversalisClient struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewUniversalisClient creates a client. A nil httpClient selects one with the configured timeout.
func NewUniversalisClient(cfg Config, httpClient *http.Client, logger *zap.Logger) *UniversalisClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout()}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return &UniversalisClient{
		cfg:     cfg,
		http:    httpClient,
		limiter: limiter,
		logger:  logger,
	}
}

// Quotes fetches the lowest listing of every id, in chunks fanned out concurrently.
// Any failed chunk fails the whole snapshot so decisions never mix partial data.
func (c *UniversalisClient) Quotes(ctx context.Context, ids []procurement.ItemID) (*Snapshot, error) {
	ids = normalizeIDs(ids)
	quotes := make(map[procurement.ItemID]procurement.PriceQuote, len(ids))
	if len(ids) == 0 {
		return NewSnapshot(c.cfg.DataCenter, quotes), nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.concurrency())

	size := c.cfg.chunkSize()
	for start := 0; start < len(ids); start += size {
		chunk := ids[start:min(start+size, len(ids))]
		g.Go(func() error {
			found, err := c.fetchChunk(gctx, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for id, q := range found {
				quotes[id] = q
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := NewSnapshot(c.cfg.DataCenter, quotes)
	c.logger.Debug("Fetched market snapshot",
		zap.String("snapshot", snap.ID),
		zap.String("data_center", c.cfg.DataCenter),
		zap.Int("requested", len(ids)),
		zap.Int("priced", snap.Len()),
	)
	return snap, nil
}

func (c *UniversalisClient) fetchChunk(ctx context.Context, chunk []procurement.ItemID) (map[procurement.ItemID]procurement.PriceQuote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.chunkURL(chunk), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build market request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("market request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("universalis HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read market response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid market response")
	}
	return parseQuotes(body), nil
}

func (c *UniversalisClient) chunkURL(chunk []procurement.ItemID) string {
	parts := make([]string, len(chunk))
	for i, id := range chunk {
		parts[i] = strconv.Itoa(int(id))
	}

	// A single id is answered with the item object at the top level instead of under "items".
	fields := "items.listings.pricePerUnit,items.listings.worldName"
	if len(chunk) == 1 {
		fields = "itemID,listings.pricePerUnit,listings.worldName"
	}

	q := url.Values{}
	q.Set("listings", strconv.Itoa(c.cfg.listings()))
	q.Set("entries", "0")
	q.Set("fields", fields)

	return fmt.Sprintf("%s/api/v2/%s/%s?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		url.PathEscape(c.cfg.DataCenter),
		strings.Join(parts, ","),
		q.Encode(),
	)
}

// parseQuotes reads both response shapes: {"items": {"<id>": {"listings": [...]}}} for a batch
// and {"itemID": n, "listings": [...]} for a single item.
func parseQuotes(body []byte) map[procurement.ItemID]procurement.PriceQuote {
	out := make(map[procurement.ItemID]procurement.PriceQuote)

	if items := gjson.GetBytes(body, "items"); items.IsObject() {
		items.ForEach(func(key, v gjson.Result) bool {
			id, err := strconv.Atoi(key.String())
			if err != nil || id <= 0 {
				return true
			}
			if q, ok := bestListing(v.Get("listings")); ok {
				out[procurement.ItemID(id)] = q
			}
			return true
		})
		return out
	}

	id := gjson.GetBytes(body, "itemID").Int()
	if id > 0 {
		if q, ok := bestListing(gjson.GetBytes(body, "listings")); ok {
			out[procurement.ItemID(id)] = q
		}
	}
	return out
}

// bestListing returns the lowest positive pricePerUnit and the world it is listed on.
// The first listing wins ties.
func bestListing(listings gjson.Result) (procurement.PriceQuote, bool) {
	var best procurement.PriceQuote
	found := false
	listings.ForEach(func(_, l gjson.Result) bool {
		p := l.Get("pricePerUnit")
		if !p.Exists() || p.Type != gjson.Number {
			return true
		}
		price := p.Float()
		if price <= 0 {
			return true
		}
		if !found || price < best.UnitPrice {
			best = procurement.PriceQuote{UnitPrice: price, Origin: l.Get("worldName").String()}
			found = true
		}
		return true
	})
	return best, found
}

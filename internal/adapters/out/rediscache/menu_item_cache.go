// Package rediscache keeps single menu item reads in Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "littlelemon:menuitem:"

// CacheAsideMenuItemReader serves menu items from Redis and falls back to
// the wrapped reader on a miss. Redis failures never fail a read; they are
// logged and the wrapped reader answers instead.
type CacheAsideMenuItemReader struct {
	queries.MenuItemReader
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCacheAsideMenuItemReader(
	reader queries.MenuItemReader,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CacheAsideMenuItemReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheAsideMenuItemReader{
		MenuItemReader: reader,
		client:         client,
		ttl:            ttl,
		logger:         logger.With("component", "MenuItemCache"),
	}
}

func key(id kernel.UUID) string {
	return keyPrefix + id.String()
}

func (c *CacheAsideMenuItemReader) GetMenuItem(ctx context.Context, id kernel.UUID) (queries.MenuItemView, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	switch {
	case err == nil:
		view, decodeErr := decode(raw)
		if decodeErr == nil {
			return view, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", "menu_item_id", id.String(), "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed", "menu_item_id", id.String(), "error", err)
	}

	view, err := c.MenuItemReader.GetMenuItem(ctx, id)
	if err != nil {
		return queries.MenuItemView{}, err
	}

	if encoded, encodeErr := json.Marshal(encode(view)); encodeErr == nil {
		if setErr := c.client.Set(ctx, key(id), encoded, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed", "menu_item_id", id.String(), "error", setErr)
		}
	}
	return view, nil
}

// Invalidate drops the cached copy of a menu item. A failed delete is
// logged; the entry then lives until its TTL runs out.
func (c *CacheAsideMenuItemReader) Invalidate(ctx context.Context, id kernel.UUID) {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.logger.ErrorContext(ctx, "cache invalidation failed", "menu_item_id", id.String(), "error", err)
	}
}

// cachedMenuItem is the JSON form kept in Redis.
type cachedMenuItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Inventory     int    `json:"inventory"`
	CategoryID    string `json:"category_id"`
	CategorySlug  string `json:"category_slug"`
	CategoryTitle string `json:"category_title"`
}

func encode(v queries.MenuItemView) cachedMenuItem {
	return cachedMenuItem{
		ID:            v.ID.String(),
		Title:         v.Title,
		Price:         v.Price.String(),
		Inventory:     v.Inventory,
		CategoryID:    v.Category.ID.String(),
		CategorySlug:  v.Category.Slug,
		CategoryTitle: v.Category.Title,
	}
}

func decode(raw []byte) (queries.MenuItemView, error) {
	var c cachedMenuItem
	if err := json.Unmarshal(raw, &c); err != nil {
		return queries.MenuItemView{}, err
	}
	id, err := kernel.UUIDFromString(c.ID)
	if err != nil {
		return queries.MenuItemView{}, err
	}
	categoryID, err := kernel.UUIDFromString(c.CategoryID)
	if err != nil {
		return queries.MenuItemView{}, err
	}
	price, err := kernel.MoneyFromString(c.Price)
	if err != nil {
		return queries.MenuItemView{}, fmt.Errorf("cached price: %w", err)
	}
	return queries.MenuItemView{
		ID:            id,
		Title:         c.Title,
		Price:         price,
		PriceAfterTax: price.WithTax(),
		Inventory:     c.Inventory,
		Category:      queries.CategoryView{ID: categoryID, Slug: c.CategorySlug, Title: c.CategoryTitle},
	}, nil
}

// NoopMenuItemCache is used when Redis is not configured.
type NoopMenuItemCache struct{}

func (NoopMenuItemCache) Invalidate(context.Context, kernel.UUID) {}

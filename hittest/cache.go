// seehuhn.de/go/chart - hit testing for chart series
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hittest

import (
	"time"

	"github.com/patrickmn/go-cache"

	"seehuhn.de/go/chart"
)

// Cache keeps hit testers between pointer events, so that the outline of
// a continuous series is only rasterised once per render.
//
// Keys are chosen by the caller.  A key should change whenever the plotted
// positions of the series change, for example by including a render
// revision.  A Cache can be used concurrently.
type Cache struct {
	items *cache.Cache
}

// NewCache returns a cache in which testers expire after ttl.  Expired
// testers are removed every cleanup interval.  A ttl of zero or less keeps
// testers until they are invalidated.
func NewCache(ttl, cleanup time.Duration) *Cache {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Cache{items: cache.New(ttl, cleanup)}
}

// Get returns the tester stored under key.  If there is none, build is
// called and its result is stored.  When two goroutines race to build the
// same key, both receive the tester which was stored first.
func (c *Cache) Get(key string, build func() HitTester) HitTester {
	if t, ok := c.items.Get(key); ok {
		chart.Logger().Debug("hit tester cache hit", "key", key)
		return t.(HitTester)
	}

	t := build()
	if err := c.items.Add(key, t, cache.DefaultExpiration); err != nil {
		if stored, ok := c.items.Get(key); ok {
			return stored.(HitTester)
		}
		c.items.Set(key, t, cache.DefaultExpiration)
	}
	chart.Logger().Debug("hit tester built", "key", key)
	return t
}

// Invalidate removes the tester stored under key.
func (c *Cache) Invalidate(key string) {
	c.items.Delete(key)
}

// Flush removes all testers.
func (c *Cache) Flush() {
	c.items.Flush()
}

// Len returns the number of stored testers, including expired testers
// which have not yet been cleaned up.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

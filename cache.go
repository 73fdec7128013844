// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/termfolio/shell"
)

const (
	// Rendered panels depend only on view, theme and width
	panelCacheExpiration = 30 * time.Minute
	panelCacheCleanup    = 5 * time.Minute
)

func NewPanelCache() *cache.Cache {
	return cache.New(panelCacheExpiration, panelCacheCleanup)
}

func panelKey(view shell.View, theme shell.Theme, width int) string {
	return fmt.Sprintf("%s/%s/%d", view, theme, width)
}

func CachePanel(c *cache.Cache, view shell.View, theme shell.Theme, width int, rendered string) {
	c.Set(panelKey(view, theme, width), rendered, cache.DefaultExpiration)
}

func GetPanel(c *cache.Cache, view shell.View, theme shell.Theme, width int) (string, bool) {
	val, ok := c.Get(panelKey(view, theme, width))
	if !ok {
		return "", false
	}
	return val.(string), true
}

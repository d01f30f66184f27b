package tools

import "time"

const (
	logPrefixWebSearch = "internal.agent.tools.WebSearch"
	logPrefixResorts   = "internal.agent.tools.ResortDistances"

	DefaultMaxResults = 3
	DefaultCacheSize  = 256
	DefaultCacheTTL   = 15 * time.Minute

	noTitle   = "No title"
	noURL     = "No URL"
	noContent = "No content"
)

package tavily

import "time"

const (
	DefaultBaseURL     = "https://api.tavily.com"
	DefaultTimeout     = 15 * time.Second
	DefaultSearchDepth = "basic"
	DefaultMaxResults  = 3

	searchPath = "/search"
	usagePath  = "/usage"
)

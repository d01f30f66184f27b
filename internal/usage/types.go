package usage

import "time"

// Resource names a governed counter.
type Resource string

const (
	ResourceSearch  Resource = "search"
	ResourceRequest Resource = "request"
)

// Counter is a windowed usage count. Count is never negative.
type Counter struct {
	Count       int
	WindowStart time.Time
}

// Expired reports whether the window of length w that started at WindowStart has ended.
func (c Counter) Expired(now time.Time, w time.Duration) bool {
	return !now.Before(c.WindowStart.Add(w))
}

// Limit configures one governed resource.
type Limit struct {
	Threshold int
	Window    time.Duration
}

// QuotaStatus is the result of a search quota check.
type QuotaStatus struct {
	Count       int
	Threshold   int
	Exceeded    bool
	WindowStart time.Time
	WindowEnd   time.Time
}

// Snapshot describes every governed resource, for inspection endpoints.
type Snapshot struct {
	Search  QuotaStatus
	Request QuotaStatus
}

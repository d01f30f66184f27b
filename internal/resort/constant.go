package resort

const (
	// DefaultLimit is how many resorts Nearest returns when no limit is given.
	DefaultLimit = 5
	MaxLimit     = 50
)

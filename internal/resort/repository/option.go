package repository

// ListResortsOptions filters the resort listing.
// An empty Query returns every resort.
type ListResortsOptions struct {
	Query string
}

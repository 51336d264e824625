package models

import "net/url"

// ProspectFilters holds the free-text filter row of the prospect listing.
// Every field is optional; empty fields are left out of the query string.
type ProspectFilters struct {
	ID       string
	User     string
	State    string
	Quantity string
	Format   string
	Status   string
}

// Values returns the non-empty filters as URL query parameters, using the
// keys the listing endpoint expects.
func (f ProspectFilters) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	set("id", f.ID)
	set("user", f.User)
	set("state", f.State)
	set("quantity", f.Quantity)
	set("format", f.Format)
	set("status", f.Status)

	return v
}

// IsZero reports whether no filter field is set.
func (f ProspectFilters) IsZero() bool {
	return f == ProspectFilters{}
}

package models

// Date is a calendar date split into its parts, matching the wire format of
// the catalog data. Embedded into users (birthday) and movies (release date)
// as three nullable columns so the year stays filterable and sortable.
type Date struct {
	Day   *int `json:"day,omitempty"`
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

// IsZero reports whether no part of the date is set. encoding/json uses it
// for the omitzero option.
func (d Date) IsZero() bool {
	return d.Day == nil && d.Month == nil && d.Year == nil
}

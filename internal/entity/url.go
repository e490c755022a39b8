// Package entity defines the domain types and errors shared by the use case
// and adapter layers: shortened URLs, user alias bindings and click analytics.
package entity

import "time"

// URL represents a shortened URL.
type URL struct {
	ID        int64     // ID is the unique identifier of the URL in the database.
	ShortCode string    // ShortCode is the code the long URL is reachable under.
	LongURL   string    // LongURL is the full URL that the short code resolves to.
	Hits      int64     // Hits is the number of successful resolutions of the short code.
	Custom    bool      // Custom reports whether the short code was chosen by a user.
	CreatedAt time.Time // CreatedAt is the timestamp when the URL was created.
}

// UserURL is a long URL saved by a user together with the short codes bound to it.
type UserURL struct {
	LongURL string
	Aliases []string
}

// Visitor describes the origin of a redirect request.
type Visitor struct {
	IP string
}

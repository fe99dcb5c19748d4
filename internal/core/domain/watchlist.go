package domain

// WatchlistEntry is the bare (investor, startup) pair returned by the add
// and check endpoints.
type WatchlistEntry struct {
	ID         string `json:"_id"`
	InvestorID string `json:"investorId"`
	StartupID  string `json:"startupId"`
}

// WatchlistItem is an entry as listed for an investor, with the startup
// document populated.
type WatchlistItem struct {
	ID      string         `json:"_id"`
	Startup StartupProfile `json:"startupId"`
}

// WatchStatus is the two-state watchlist toggle for one (investor,
// startup) pair: either not watchlisted with an empty EntryID, or
// watchlisted with the single outstanding entry id.
type WatchStatus struct {
	Watchlisted bool   `json:"isWatchlisted"`
	EntryID     string `json:"watchlistId,omitempty"`
}

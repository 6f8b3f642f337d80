package types

// List index (featured/top voted/new bots)
type ListIndex struct {
	Featured []IndexBot `json:"featured"`
	TopVoted []IndexBot `json:"top_voted"`
	NewBots  []IndexBot `json:"new_bots"`
}

// List stats
type ListStats struct {
	TotalBots     int64 `json:"total_bots"`
	TotalApproved int64 `json:"total_approved"`
	TotalPending  int64 `json:"total_pending"`
	TotalUsers    int64 `json:"total_users"`
	TotalVotes    int64 `json:"total_votes"`
}

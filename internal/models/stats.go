package models

// DashboardCounts holds the per-resource totals shown on the admin overview.
type DashboardCounts struct {
	Projects       int64 `json:"projects"`
	Skills         int64 `json:"skills"`
	Messages       int64 `json:"messages"`
	Certificates   int64 `json:"certificates"`
	UnreadMessages int64 `json:"unreadMessages"`
}

// RecentActivity lists the latest projects and messages.
type RecentActivity struct {
	Projects []ProjectSummary `json:"projects"`
	Messages []MessageSummary `json:"messages"`
}

// DashboardStats is the payload of the dashboard stats endpoint.
type DashboardStats struct {
	Stats          DashboardCounts `json:"stats"`
	RecentActivity RecentActivity  `json:"recentActivity"`
}

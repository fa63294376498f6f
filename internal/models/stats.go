package models

// Stats is the admin dashboard summary. Messages counts unread messages only.
type Stats struct {
	Projects      int `json:"projects"`
	Skills        int `json:"skills"`
	Messages      int `json:"messages"`
	TotalMessages int `json:"totalMessages"`
}

package models

// PayoutReport is a derived monthly summary of a workshop's completed-booking
// earnings. It is recomputed per query and never persisted, so IsPaid resets
// on every call.
type PayoutReport struct {
	WorkshopID     string  `json:"workshop_id"`
	Month          int     `json:"month"`
	Year           int     `json:"year"`
	TotalJobs      int     `json:"total_jobs"`
	TotalAmount    float64 `json:"total_amount"`
	Commission     float64 `json:"commission"`
	WorkshopAmount float64 `json:"workshop_amount"`
	IsPaid         bool    `json:"is_paid"`
}

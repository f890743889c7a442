package domain

// Service is a catalog entry. Read-only from the portal's perspective.
type Service struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Cost          float64 `json:"cost"`
	Unit          string  `json:"unit"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	TotalBookings int     `json:"totalBookings"`
}

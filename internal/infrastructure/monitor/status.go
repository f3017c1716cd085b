package monitor

import "time"

// Status is a point-in-time snapshot of storage health and collection sizes.
type Status struct {
	Storage     bool           `json:"storage"`
	Collections map[string]int `json:"collections"`
	LastCheck   time.Time      `json:"last_check"`
}

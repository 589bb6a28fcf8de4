package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Ratio returns the remaining share of health in [0, 1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r < 0 {
		return 0
	}
	return r
}

var Health = donburi.NewComponentType[HealthData]()

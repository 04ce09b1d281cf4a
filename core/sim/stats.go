package sim

// HoursPerDay bounds the wait-time bucket map.
const HoursPerDay = 24

// Stats aggregates the outcome of a simulation run. The engine owns the
// struct exclusively; it is handed out only after the run completes.
type Stats struct {
	Steps          int
	Arrivals       int
	Delivered      int
	TotalEnergy    float64
	TotalWaitSteps int

	// WaitByHour holds every recorded wait time, bucketed by the simulated
	// hour of day the delivery happened in.
	WaitByHour [HoursPerDay][]float64
}

func (s *Stats) recordDelivery(hour, waitSteps int) {
	s.Delivered++
	s.WaitByHour[hour] = append(s.WaitByHour[hour], float64(waitSteps))
}

// AverageWaitSteps returns accumulated wait steps over delivered passengers,
// zero when nothing was delivered.
func (s *Stats) AverageWaitSteps() float64 {
	if s.Delivered == 0 {
		return 0
	}
	return float64(s.TotalWaitSteps) / float64(s.Delivered)
}

// WaitSamples returns all recorded wait times in hour order.
func (s *Stats) WaitSamples() []float64 {
	var out []float64
	for _, bucket := range s.WaitByHour {
		out = append(out, bucket...)
	}
	return out
}

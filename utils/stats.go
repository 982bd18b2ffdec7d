package utils

import "time"

// populationSmoothing is the weight of the newest sample in AveragePopulation
const populationSmoothing = 0.1

// Stats tracks throughput and population over one run
type Stats struct {
	StartTime            time.Time
	TotalGenerations     int
	ActiveCells          int
	GenerationsPerSecond float64
	AveragePopulation    float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a finished generation and how long it took to produce
func (s *Stats) Update(generation, population int, frame time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if frame > 0 {
		s.GenerationsPerSecond = float64(time.Second) / float64(frame)
	}

	sample := float64(population)
	if s.AveragePopulation == 0 {
		s.AveragePopulation = sample
		return
	}
	s.AveragePopulation += (sample - s.AveragePopulation) * populationSmoothing
}

// Runtime is the wall time since the run started
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Density returns the share of live cells in percent
func Density(population, width, height int) float64 {
	if width*height == 0 {
		return 0
	}
	return float64(population) / float64(width*height) * 100
}

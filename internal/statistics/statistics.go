package statistics

import "math"

// Statistics accumulates per-round net rewards across a simulation batch.
// Failed rounds are counted separately and never contribute to the moments,
// so a bad round cannot silently corrupt the running average.
type Statistics struct {
	Rounds int
	Failed int
	Sum    float64
	Sum2   float64 // Sum of squares for variance calculation
}

// Add records one completed round's net reward
func (s *Statistics) Add(reward float64) {
	s.Rounds++
	s.Sum += reward
	s.Sum2 += reward * reward
}

// AddFailure records a round that errored and was excluded from the average
func (s *Statistics) AddFailure() {
	s.Failed++
}

// Mean returns the arithmetic mean reward per completed round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of the rewards
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the rewards
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

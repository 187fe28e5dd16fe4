package utils

import "time"

// Clock abstracts time.Now so alert dates are controllable in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

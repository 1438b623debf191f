package model

import (
	"fmt"
	"math"
)

const minutesPerDay = 24 * 60

// Clock is a time of day expressed in minutes since midnight. All arithmetic
// wraps modulo 24h, matching the port's daily planning horizon.
type Clock float64

// ParseClock parses a "HH:MM" string into a Clock.
func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return Clock(h*60 + m), nil
}

// Add returns the clock shifted by the given number of minutes, wrapped
// around midnight. Negative shifts are allowed.
func (c Clock) Add(minutes float64) Clock {
	v := math.Mod(float64(c)+minutes, minutesPerDay)
	if v < 0 {
		v += minutesPerDay
	}
	return Clock(v)
}

// Hours returns the clock as fractional hours since midnight.
func (c Clock) Hours() float64 {
	return float64(c) / 60
}

// Minutes returns the clock as minutes since midnight.
func (c Clock) Minutes() float64 {
	return float64(c)
}

// MinutesUntil returns the signed shortest distance in minutes from c to
// other, in (-720, 720].
func (c Clock) MinutesUntil(other Clock) float64 {
	d := math.Mod(float64(other)-float64(c), minutesPerDay)
	if d > minutesPerDay/2 {
		d -= minutesPerDay
	}
	if d <= -minutesPerDay/2 {
		d += minutesPerDay
	}
	return d
}

func (c Clock) String() string {
	total := int(math.Round(float64(c)))
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

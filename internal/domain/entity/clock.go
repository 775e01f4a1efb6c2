package entity

import "time"

const clockLayout = "15:04"

// NormalizeClock parses a wall-clock time in HH:MM form and returns it
// zero-padded. Zero-padded HH:MM strings compare lexicographically in clock
// order, which the schedule and appointment interval checks rely on.
func NormalizeClock(s string) (string, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(clockLayout), nil
}

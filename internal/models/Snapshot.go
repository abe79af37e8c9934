package models

// Snapshot is one parsed reading from the upstream conditions feed.
// Fields are pointers so a successfully parsed document with a different
// schema is distinguishable from a reading of zero.
type Snapshot struct {
	CurrentObservation *Observation `json:"current_observation"`
}

// Observation holds the numeric fields projected into properties.
type Observation struct {
	TempF      *float64 `json:"temp_f"`
	PressureIn *float64 `json:"pressure_in"`
	WindMPH    *float64 `json:"wind_mph"`
}

// DefaultSnapshot carries the startup property values, so a failure on the
// very first cycle substitutes these instead of an empty document.
func DefaultSnapshot() Snapshot {
	temp, pressure, wind := 0.0, 30.0, 30.0
	return Snapshot{
		CurrentObservation: &Observation{
			TempF:      &temp,
			PressureIn: &pressure,
			WindMPH:    &wind,
		},
	}
}

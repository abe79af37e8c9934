package models

// PropertyMetadata describes a property independently of its value.
// It is fixed at startup and never changes across poll cycles.
type PropertyMetadata struct {
	Name        string `json:"name" example:"temperature"`
	Description string `json:"description" example:"the temperature in ℉"`
	Unit        string `json:"unit" example:"℉"`
}

// PropertyValue is the read-only copy of a property handed to observers.
type PropertyValue struct {
	PropertyMetadata
	Value float64 `json:"value" example:"54.3"`
}

package models

// ThingDescription is the observer-facing description of one served thing.
type ThingDescription struct {
	ID          string             `json:"id" example:"b2c6b1f0-5b8a-4f6e-9d0e-7c1a2f3b4c5d"`
	Name        string             `json:"name" example:"my_weatherstation"`
	Type        string             `json:"type" example:"thing"`
	Description string             `json:"description" example:"a weather station"`
	Properties  []PropertyMetadata `json:"properties"`
	Href        string             `json:"href" example:"/things/b2c6b1f0-5b8a-4f6e-9d0e-7c1a2f3b4c5d"`
}

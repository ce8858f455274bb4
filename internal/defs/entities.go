// internal/defs/entities.go
package defs

import "master-quest/internal/config"

// EntityTypeDefinition holds the registration attributes of an entity type.
type EntityTypeDefinition struct {
	ID             string   `json:"id"`
	Category       Category `json:"category"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	TrackingRange  int      `json:"tracking_range"`
	UpdateInterval int      `json:"update_interval"`
	Persistent     bool     `json:"persistent"`
	Texture        string   `json:"texture,omitempty"`
}

// DefaultEntityTypes returns the built-in entity type definitions.
func DefaultEntityTypes() []EntityTypeDefinition {
	return []EntityTypeDefinition{
		{
			ID:             config.BeamEntityID,
			Category:       CategoryMisc,
			Width:          config.BeamHitboxWidth,
			Height:         config.BeamHitboxHeight,
			TrackingRange:  config.BeamTrackingRange,
			UpdateInterval: config.BeamUpdateInterval,
			Persistent:     false,
			Texture:        config.BeamTexture,
		},
	}
}

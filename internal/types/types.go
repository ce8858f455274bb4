// internal/types/types.go
package types

// EntityID identifies an entity inside the ECS world. Zero is never issued.
type EntityID uint64

// NoEntity is the zero EntityID, used where a reference is optional.
const NoEntity EntityID = 0

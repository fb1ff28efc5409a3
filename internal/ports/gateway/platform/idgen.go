package port_platform

import "github.com/google/uuid"

// IDGenerator issues correlation and request identifiers.
type IDGenerator interface {
	NewUUID() uuid.UUID
}

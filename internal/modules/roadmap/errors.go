package roadmap

import (
	"fmt"

	"github.com/google/uuid"
)

// RoadmapNotFoundError is the expected outcome for a degree/specialization
// pair with no stored roadmap. Missing names the first absent record:
// "degree", "specialization" or "roadmap".
type RoadmapNotFoundError struct {
	DegreeID         uuid.UUID
	SpecializationID uuid.UUID
	Missing          string
}

func (e *RoadmapNotFoundError) Error() string {
	return fmt.Sprintf("roadmap not found for degree %s / specialization %s (no %s)", e.DegreeID, e.SpecializationID, e.Missing)
}

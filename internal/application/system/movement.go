package system

import (
	"github.com/younwookim/art/internal/domain/collision"
	"github.com/younwookim/art/internal/domain/entity"
)

// MovementSystem moves bodies by a fixed step per logical frame and keeps
// them out of solids. There is no velocity: a body moves exactly as far as
// its intent says.
type MovementSystem struct {
	solids []collision.Boxer
}

// NewMovementSystem creates a movement system colliding against solids
func NewMovementSystem(solids []collision.Boxer) *MovementSystem {
	return &MovementSystem{solids: solids}
}

// AddSolid adds a solid to collide against.
func (s *MovementSystem) AddSolid(b collision.Boxer) {
	s.solids = append(s.solids, b)
}

// Apply moves body by the intent one axis at a time, X first, and pushes it
// out of any solid it ends up overlapping. It returns every contact.
func (s *MovementSystem) Apply(body *entity.Body, intent MoveIntent) []collision.Result {
	var contacts []collision.Result

	if intent.DX != 0 {
		body.Move(intent.DX, 0)
		contacts = append(contacts, s.Separate(body)...)
	}
	if intent.DY != 0 {
		body.Move(0, intent.DY)
		contacts = append(contacts, s.Separate(body)...)
	}

	return contacts
}

// Separate pushes body out of every solid it overlaps, along the side with
// the smallest penetration.
func (s *MovementSystem) Separate(body *entity.Body) []collision.Result {
	var contacts []collision.Result

	for _, solid := range s.solids {
		res, ok := collision.Detect(body, solid)
		if !ok {
			continue
		}

		switch res.Blocked.Side() {
		case collision.SideRight:
			body.X -= res.Overlap.X
		case collision.SideLeft:
			body.X += res.Overlap.X
		case collision.SideBottom:
			body.Y -= res.Overlap.Y
		case collision.SideTop:
			body.Y += res.Overlap.Y
		}
		contacts = append(contacts, res)
	}

	return contacts
}

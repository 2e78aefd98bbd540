package dragon

import "time"

// Dragon is a record from the external dragon API. Read-only to this
// system apart from deletion.
type Dragon struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Type names by code. Anything outside the known codes is Unknown; an
// unmapped code is never an error.
const (
	TypeFire     = 1
	TypeIce      = 2
	TypeElectric = 3
	TypeEarth    = 4
)

var typeNames = map[int]string{
	TypeFire:     "Fire",
	TypeIce:      "Ice",
	TypeElectric: "Electric",
	TypeEarth:    "Earth",
}

// TypeName resolves a type code to its display name. Total: every input
// resolves, unmapped codes to "Unknown".
func TypeName(code int) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return "Unknown"
}

// TypeName resolves the dragon's own type code.
func (d Dragon) TypeName() string {
	return TypeName(d.Type)
}

package models

// Tour identifiers used in the players dataset
const (
	TourATP = "ATP"
	TourWTA = "WTA"
)

// Player is one row of the players table.
type Player struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Tour      string `json:"tour"`
	Country   string `json:"country,omitempty"`
	PlayerID  string `json:"player_id,omitempty"`
}

package entity

// GameView is the read model handed to the rendering layer.
type GameView struct {
	ID       string   `json:"id"`
	Board    Board    `json:"board"`
	Step     int      `json:"step"`
	Turn     string   `json:"player_turn,omitempty"`
	Winner   string   `json:"winner,omitempty"`
	Status   string   `json:"status"`
	Moves    []string `json:"moves"`
	Finished bool     `json:"finished"`
}

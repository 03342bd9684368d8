package level

import "github.com/ugaemi/campus-maze/internal/game"

// HUD is the score line shown during play.
type HUD struct {
	Score int `json:"score"`
	Level int `json:"level"`
	Lives int `json:"lives"`

	// Boosted is set while a note pickup speed boost is running.
	Boosted bool `json:"boosted,omitempty"`
}

// Sprite is a drawable entity reduced to its kind and box.
type Sprite struct {
	Kind game.Kind `json:"kind"`
	Box  game.Rect `json:"box"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	RunID   string       `json:"run_id"`
	State   game.State   `json:"state"`
	HUD     HUD          `json:"hud"`
	Name    string       `json:"name"`
	Variant game.Variant `json:"variant"`
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Sprites []Sprite     `json:"sprites,omitempty"`
}

// Entities lists everything on the field in draw order: walls, notes, gate,
// player, pursuer. It is empty before the first level starts.
func (c *Controller) Entities() []game.Entity {
	if c.player == nil {
		return nil
	}
	entities := make([]game.Entity, 0, len(c.walls)+c.notes.Len()+3)
	for _, w := range c.walls {
		entities = append(entities, game.Wall{Box: w})
	}
	for _, n := range c.Notes() {
		entities = append(entities, n)
	}
	entities = append(entities, c.gate, c.player, c.pursuer)
	return entities
}

// HUD returns the current score, level and lives.
func (c *Controller) HUD() HUD {
	hud := HUD{Level: c.level}
	if c.player != nil {
		hud.Score = c.player.Score
		hud.Lives = c.player.Lives
		hud.Boosted = c.player.IsBoosted()
	} else {
		hud.Lives = game.StartingLives
	}
	return hud
}

// Snapshot copies the current frame state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		RunID:   c.runID,
		State:   c.state,
		HUD:     c.HUD(),
		Name:    c.name,
		Variant: c.variant,
	}
	if c.grid != nil {
		s.Width = float64(c.grid.Cols() * game.TileSize)
		s.Height = float64(c.grid.Rows() * game.TileSize)
	}

	entities := c.Entities()
	if len(entities) > 0 {
		s.Sprites = make([]Sprite, 0, len(entities))
		for _, e := range entities {
			s.Sprites = append(s.Sprites, Sprite{Kind: e.Kind(), Box: e.Bounds()})
		}
	}
	return s
}

package game

// GateBonus returns the score for reaching the gate. A level finished without
// losing a life pays the full bonus.
func GateBonus(livesAtLevelStart, livesNow int) int {
	if livesNow >= livesAtLevelStart {
		return ClearBonus
	}
	return ClearBonusLost
}

// NextLevel advances the level counter, holding at MaxLevel.
func NextLevel(level int) int {
	if level >= MaxLevel {
		return MaxLevel
	}
	return level + 1
}

// NoteCount is the number of notes placed on a level.
func NoteCount(level int) int {
	return NoteBaseCount + NotesPerLevel*level
}

// CollectNotes returns the IDs of notes overlapping the player box. It does
// not modify notes; callers remove the returned IDs afterwards.
func CollectNotes(player Rect, notes []*Note) []int {
	var ids []int
	for _, n := range notes {
		if player.Overlaps(n.Box) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

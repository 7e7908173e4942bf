package catalog

// ModeInfo describes how a mode is presented in menus.
type ModeInfo struct {
	Icon  ShapeIcon
	Color string
	Hint  string
}

// ShapeIcon names the shape drawn as a mode's menu icon.
type ShapeIcon string

// DifficultyInfo describes a difficulty tier in menus.
type DifficultyInfo struct {
	Color  string
	MinAge int
	MaxAge int
}

var modeInfo = map[Mode]ModeInfo{
	ModeClick:  {Icon: "circle", Color: "#FF6B6B", Hint: "Click the shapes!"},
	ModeCatch:  {Icon: "star", Color: "#4ECDC4", Hint: "Catch the moving shapes!"},
	ModeDrag:   {Icon: "square", Color: "#45B7D1", Hint: "Drag each shape to its shadow!"},
	ModeDouble: {Icon: "heart", Color: "#DDA0DD", Hint: "Double-click to pop!"},
}

var difficultyInfo = map[Difficulty]DifficultyInfo{
	DifficultyStarter:  {Color: "#96CEB4", MinAge: 3, MaxAge: 4},
	DifficultyExplorer: {Color: "#FFEAA7", MinAge: 4, MaxAge: 5},
	DifficultyChampion: {Color: "#FF6B6B", MinAge: 5, MaxAge: 6},
}

// InfoForMode returns menu metadata for a mode.
func InfoForMode(m Mode) ModeInfo {
	return modeInfo[m]
}

// InfoForDifficulty returns menu metadata for a difficulty.
func InfoForDifficulty(d Difficulty) DifficultyInfo {
	return difficultyInfo[d]
}

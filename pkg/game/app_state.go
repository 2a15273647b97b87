package game

// AppState 全局屏幕状态
//
// 线性状态图：Title → MainMenu → Game → Pause → End
type AppState int

const (
	StateTitle AppState = iota
	StateMainMenu
	StateGame
	StatePause
	StateEnd
)

var appStateNames = map[AppState]string{
	StateTitle:    "Title",
	StateMainMenu: "MainMenu",
	StateGame:     "Game",
	StatePause:    "Pause",
	StateEnd:      "End",
}

// String 返回状态名称
func (s AppState) String() string {
	if name, ok := appStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Next 返回状态图中的下一个状态；End 没有下一个状态
func (s AppState) Next() (AppState, bool) {
	if s < StateTitle || s >= StateEnd {
		return s, false
	}
	return s + 1, true
}

// IsTerminal 是否为最终状态
func (s AppState) IsTerminal() bool {
	return s == StateEnd
}

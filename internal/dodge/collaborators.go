package dodge

// HighScoreStore persists the single best score across sessions.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Display receives the text and panel updates driven by state changes.
// Implementations are pure output sinks.
type Display interface {
	ShowScore(score int)
	ShowHighScore(score int)
	ShowGameOver(finalScore int, visible bool)
	ShowStart(visible bool)
}

// MemoryStore is a HighScoreStore that lives only as long as the process.
type MemoryStore struct {
	score int
}

// LoadHighScore implements HighScoreStore.
func (m *MemoryStore) LoadHighScore() (int, error) {
	return m.score, nil
}

// SaveHighScore implements HighScoreStore.
func (m *MemoryStore) SaveHighScore(score int) error {
	m.score = score
	return nil
}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int)          {}
func (nopDisplay) ShowHighScore(int)      {}
func (nopDisplay) ShowGameOver(int, bool) {}
func (nopDisplay) ShowStart(bool)         {}

// DisplayState is a Display that records the latest updates so a frontend
// can draw them on its own schedule.
type DisplayState struct {
	Score        int
	HighScore    int
	FinalScore   int
	GameOverOpen bool
	StartOpen    bool
}

// ShowScore implements Display.
func (d *DisplayState) ShowScore(score int) { d.Score = score }

// ShowHighScore implements Display.
func (d *DisplayState) ShowHighScore(score int) { d.HighScore = score }

// ShowGameOver implements Display.
func (d *DisplayState) ShowGameOver(finalScore int, visible bool) {
	d.FinalScore = finalScore
	d.GameOverOpen = visible
}

// ShowStart implements Display.
func (d *DisplayState) ShowStart(visible bool) { d.StartOpen = visible }

package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/slimehop/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// LevelSelectScene lists the bundled levels with their best times.
type LevelSelectScene struct {
	sceneChanger SceneChanger
	session      *Session
	selectUI     *ui.LevelSelectUI
	names        []string
	picked       string
	quit         bool
	once         sync.Once
}

func NewLevelSelectScene(sc SceneChanger, session *Session) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, session: session}
}

func (ls *LevelSelectScene) configure() {
	ls.names = ls.session.Names()
	ls.selectUI = ui.NewLevelSelectUI(
		levelEntries(ls.session),
		func(name string) { ls.picked = name },
		func() { ls.quit = true },
	)
}

func (ls *LevelSelectScene) Update() error {
	ls.once.Do(ls.configure)

	ls.selectUI.Update()

	if ls.quit || justPressed(quitKeys) {
		return ebiten.Termination
	}
	for i, key := range digitKeys {
		if i < len(ls.names) && justPressed([]ebiten.Key{key}) {
			ls.picked = ls.names[i]
		}
	}
	if ls.picked != "" {
		ls.sceneChanger.ChangeScene(NewPlatformerScene(ls.sceneChanger, ls.session, ls.picked))
	}
	return nil
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ls.selectUI == nil {
		return
	}
	ls.selectUI.Draw(screen)
}

// levelEntries lists the session's levels in play order with their best
// results.
func levelEntries(s *Session) []ui.LevelEntry {
	names := s.Names()
	entries := make([]ui.LevelEntry, len(names))
	for i, name := range names {
		entries[i] = ui.LevelEntry{Name: name, Last: name == s.Saved.LastLevel}
	}
	if s.Runs == nil {
		return entries
	}

	best, err := s.Runs.BestRuns(names)
	if err != nil {
		log.Warn("Could not read best runs", "error", err)
		return entries
	}
	for i := range entries {
		if r, ok := best[entries[i].Name]; ok {
			entries[i].Best = r.Result()
		}
	}
	return entries
}

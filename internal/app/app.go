// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"kite/internal/clipboard"
	"kite/internal/config"
	"kite/internal/cursor"
	"kite/internal/document"
	"kite/internal/event"
	"kite/internal/logger"
	"kite/internal/modehandler"
	"kite/internal/statusbar"
	"kite/internal/tui"
)

// App wires the editor components together and runs the main loop. The
// editor is single-threaded: one loop polls the next input event, mutates
// state, and redraws.
type App struct {
	tuiManager  *tui.TUI
	doc         *document.Document
	coordinator *cursor.Coordinator
	statusBar   *statusbar.StatusBar
	events      *event.Manager
	modeHandler *modehandler.ModeHandler
	cfg         *config.Config

	quit chan struct{}
}

// NewApp creates and initializes a new application instance. An existing
// file at filePath is opened; a nonexistent path yields a new empty
// document with the path pre-set; an empty filePath yields a pathless
// document.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	var doc *document.Document
	var err error
	if filePath != "" {
		doc, err = document.Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("loading '%s': %w", filePath, err)
		}
	} else {
		doc = document.New("")
	}
	doc.SetMaxHistory(cfg.Editor.MaxHistory)

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	coordinator := cursor.New(doc, cfg.Editor.MaxHistory)
	statusBar := statusbar.New(statusbar.DefaultConfig())
	events := event.NewManager()
	register := clipboard.New(cfg.Editor.SystemClipboard)
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Document:   doc,
		Cursor:     coordinator,
		StatusBar:  statusBar,
		Events:     events,
		Clipboard:  register,
		TabWidth:   cfg.Editor.TabWidth,
		QuitSignal: quitChan,
	})

	a := &App{
		tuiManager:  tuiManager,
		doc:         doc,
		coordinator: coordinator,
		statusBar:   statusBar,
		events:      events,
		modeHandler: modeHandler,
		cfg:         cfg,
		quit:        quitChan,
	}

	events.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	events.Subscribe(event.TypeDocumentModified, a.handleDocumentChangedForStatus)
	events.Subscribe(event.TypeDocumentSaved, a.handleDocumentChangedForStatus)
	events.Subscribe(event.TypeModeChanged, a.handleModeChangedForStatus)

	_, height := tuiManager.Size()
	a.setViewSize(height)

	return a, nil
}

// Run starts the main event loop. The deferred Close restores the terminal
// on every exit path.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.statusBar.SetTemporaryMessage("kite -- :w save | :q quit | i insert")
	a.draw()

	for {
		select {
		case <-a.quit:
			a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: quit signal received, exiting")
			return nil
		default:
		}

		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			_, height := a.tuiManager.Size()
			a.setViewSize(height)
			a.draw()
		case *tcell.EventKey:
			if a.modeHandler.HandleKey(e) {
				a.draw()
			}
		}
	}
}

// setViewSize tells the coordinator how many rows the document area has.
func (a *App) setViewSize(screenHeight int) {
	a.coordinator.SetViewHeight(screenHeight - a.cfg.Editor.StatusBarHeight)
}

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	width, height := a.tuiManager.Size()
	a.tuiManager.Clear()
	tui.DrawDocument(a.tuiManager, a.doc, height-a.cfg.Editor.StatusBarHeight)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.DrawCursor(a.tuiManager, a.coordinator.Pos())
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.doc.Path(), a.doc.Modified())
	a.statusBar.SetCursorInfo(a.coordinator.Pos())
	a.statusBar.SetEditorMode(a.modeHandler.Mode().Label())

	if a.modeHandler.Mode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.CommandBuffer())
	}
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleDocumentChangedForStatus(e event.Event) bool {
	a.statusBar.SetFileInfo(a.doc.Path(), a.doc.Modified())
	return false
}

func (a *App) handleModeChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		a.statusBar.SetEditorMode(data.Label)
	}
	return false
}

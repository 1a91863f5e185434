// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/swatch/internal/config"
	"github.com/zjrosen/swatch/internal/log"
	application "github.com/zjrosen/swatch/internal/palette/application"
	palette "github.com/zjrosen/swatch/internal/palette/domain"
	"github.com/zjrosen/swatch/internal/pubsub"
	"github.com/zjrosen/swatch/internal/ui/browser"
	"github.com/zjrosen/swatch/internal/ui/details"
	"github.com/zjrosen/swatch/internal/ui/help"
	"github.com/zjrosen/swatch/internal/ui/toaster"
	"github.com/zjrosen/swatch/internal/watcher"
)

// toastDuration is how long feedback toasts stay on screen.
const toastDuration = 2 * time.Second

// view identifies which screen currently owns key input.
type view int

const (
	viewBrowser view = iota
	viewDetails
)

// filesChangedMsg carries a debounced batch of changed palette files.
type filesChangedMsg struct {
	Paths []string
}

// reloadDoneMsg reports the outcome of a palette reload.
type reloadDoneMsg struct {
	Added int
	Err   error
}

// Model is the root application state.
type Model struct {
	cfg     config.Config
	service *application.Service

	currentView view
	browser     browser.Model
	details     details.Model
	helpView    help.Model
	showHelp    bool
	toaster     toaster.Model

	width  int
	height int

	// Growth event subscription
	growthCtx    context.Context
	growthCancel context.CancelFunc
	growthCh     <-chan pubsub.Event[application.Growth]

	// File watcher for auto-reload
	watcherHandle *watcher.Watcher
	watcherCh     <-chan []string
}

// New creates the root model wired to the palette service. When
// auto-reload is enabled the configured palette directories are
// watched for changes.
func New(service *application.Service, cfg config.Config) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		cfg:     cfg,
		service: service,
		browser: browser.New(browser.Config{
			ShowIndexes:   cfg.UI.ShowIndexes,
			ShowStatusBar: cfg.UI.ShowStatusBar,
			SwatchWidth:   cfg.UI.SwatchWidth,
		}),
		helpView:     help.New(),
		toaster:      toaster.New(),
		growthCtx:    ctx,
		growthCancel: cancel,
		growthCh:     service.Subscribe(ctx),
	}

	m.browser = m.browser.SetVersion(service.Registry().Version())
	m.browser = m.browser.SetEntries(service.Registry().Entries())

	if cfg.AutoReload && len(cfg.PaletteDirs) > 0 {
		w, err := watcher.New(watcher.DefaultConfig(cfg.PaletteDirs...))
		if err != nil {
			log.ErrorErr(log.CatWatcher, "creating watcher", err)
			return m
		}
		ch, err := w.Start()
		if err != nil {
			log.ErrorErr(log.CatWatcher, "starting watcher", err)
			return m
		}
		m.watcherHandle = w
		m.watcherCh = ch
	}

	return m
}

// Init starts the background listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listenGrowth()}
	if m.watcherCh != nil {
		cmds = append(cmds, m.listenWatcher())
	}
	return tea.Batch(cmds...)
}

// listenGrowth waits for the next registry growth event.
func (m Model) listenGrowth() tea.Cmd {
	return pubsub.ListenCmd(m.growthCtx, m.growthCh)
}

// listenWatcher waits for the next debounced batch of file changes.
func (m Model) listenWatcher() tea.Cmd {
	ctx := m.growthCtx
	ch := m.watcherCh
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case paths, ok := <-ch:
			if !ok {
				return nil
			}
			return filesChangedMsg{Paths: paths}
		}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browser = m.browser.SetSize(msg.Width, msg.Height)
		m.details = m.details.SetSize(msg.Width, msg.Height)
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[application.Growth]:
		return m.handleGrowth(msg.Payload)

	case filesChangedMsg:
		return m.handleFilesChanged(msg)

	case reloadDoneMsg:
		if msg.Err != nil {
			m.toaster = m.toaster.Show(fmt.Sprintf("reload failed: %v", msg.Err), toaster.StyleError)
			return m, toaster.ScheduleDismiss(toastDuration)
		}
		if msg.Added == 0 {
			// Additions surface through the growth event instead.
			m.toaster = m.toaster.Show("palettes up to date", toaster.StyleInfo)
			return m, toaster.ScheduleDismiss(toastDuration)
		}
		return m, nil

	case browser.SelectMsg:
		m.details = details.New(msg.Entry).SetSize(m.width, m.height)
		m.currentView = viewDetails
		return m, nil

	case browser.RefreshMsg:
		return m, m.reloadAll()

	case browser.YankedMsg:
		if msg.Err != nil {
			m.toaster = m.toaster.Show(fmt.Sprintf("copy failed: %v", msg.Err), toaster.StyleError)
		} else {
			m.toaster = m.toaster.Show("copied "+msg.ID, toaster.StyleSuccess)
		}
		return m, toaster.ScheduleDismiss(toastDuration)

	case details.ClosedMsg:
		m.currentView = viewBrowser
		return m, nil

	case details.YankedMsg:
		if msg.Err != nil {
			m.toaster = m.toaster.Show(fmt.Sprintf("copy failed: %v", msg.Err), toaster.StyleError)
		} else {
			m.toaster = m.toaster.Show("copied "+msg.Hex, toaster.StyleSuccess)
		}
		return m, toaster.ScheduleDismiss(toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q", "enter":
			m.showHelp = false
		}
		return m, nil
	}

	switch m.currentView {
	case viewDetails:
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd

	default:
		if !m.browser.Filtering() {
			switch msg.String() {
			case "?":
				m.showHelp = true
				return m, nil
			case "q":
				return m, m.quit()
			}
		}
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		return m, cmd
	}
}

// handleGrowth refreshes the palette list and surfaces a toast for
// batches that actually added entries.
func (m Model) handleGrowth(growth application.Growth) (tea.Model, tea.Cmd) {
	m.browser = m.browser.SetEntries(m.service.Registry().Entries())
	m.browser = m.browser.SetVersion(m.service.Registry().Version())

	cmds := []tea.Cmd{m.listenGrowth()}
	if growth.Added > 0 {
		word := "palettes"
		if growth.Added == 1 {
			word = "palette"
		}
		m.toaster = m.toaster.Show(
			fmt.Sprintf("%d %s registered (%s)", growth.Added, word, growth.Source),
			toaster.StyleSuccess)
		cmds = append(cmds, toaster.ScheduleDismiss(toastDuration))
	}
	return m, tea.Batch(cmds...)
}

// handleFilesChanged reloads the changed files and re-arms the
// watcher listener.
func (m Model) handleFilesChanged(msg filesChangedMsg) (tea.Model, tea.Cmd) {
	service := m.service
	paths := msg.Paths
	reload := func() tea.Msg {
		ctx := context.Background()
		total := 0
		for _, path := range paths {
			added, err := service.LoadFile(ctx, path)
			if err != nil {
				log.ErrorErr(log.CatLoader, "reloading changed file", err, "path", path)
				continue
			}
			total += added
		}
		return reloadDoneMsg{Added: total}
	}
	return m, tea.Batch(reload, m.listenWatcher())
}

// reloadAll re-scans every configured palette directory plus the user
// palette directory.
func (m Model) reloadAll() tea.Cmd {
	service := m.service
	dirs := m.cfg.PaletteDirs
	return func() tea.Msg {
		ctx := context.Background()
		total := 0
		for _, dir := range dirs {
			added, err := service.LoadDir(ctx, dir)
			if err != nil {
				return reloadDoneMsg{Added: total, Err: err}
			}
			total += added
		}
		total += service.LoadUserPalettes(ctx)
		return reloadDoneMsg{Added: total}
	}
}

// quit exits the program. Teardown happens in Close once the Bubble
// Tea loop has returned.
func (m Model) quit() tea.Cmd {
	return tea.Quit
}

// Close cancels the growth subscription and stops the file watcher.
// Call it exactly once, after the program has finished.
func (m Model) Close() error {
	m.growthCancel()
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

// View renders the current screen with overlays on top.
func (m Model) View() string {
	var base string
	switch m.currentView {
	case viewDetails:
		base = m.details.View()
	default:
		base = m.browser.View()
	}

	if m.showHelp {
		base = m.helpView.Overlay(base)
	}

	return m.toaster.Overlay(base, m.width, m.height)
}

// SelectedPalette exposes the browser selection, mainly for tests.
func (m Model) SelectedPalette() *palette.Entry {
	return m.browser.Selected()
}

package tui

import (
	"github.com/MKhiriev/cuide-me/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// closer is implemented by pages that hold resources, such as the live
// channel of the dashboard. RootModel closes a page when leaving it.
type closer interface {
	Close()
}

// RootModel is the TUI router:
//  1. keeps the active page
//  2. handles the global ctrl+c quit and the build info window
//  3. handles NavigateTo messages
//  4. delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			r.close()
			r.quitByUser = true
			return r, tea.Quit
		}
		if key.Matches(msg, keys.buildInfo) {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}

	case tea.WindowSizeMsg:
		// every page keeps the size so a page opened later lays out correctly
		var cmds []tea.Cmd
		for name, page := range r.pages {
			updated, cmd := page.Update(msg)
			r.pages[name] = updated
			cmds = append(cmds, cmd)
		}
		return r, tea.Batch(cmds...)

	case NavigateTo:
		if _, exists := r.pages[msg.Page]; !exists {
			return r, nil
		}
		if msg.Page != r.current {
			r.close()
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.page().Init(), func() tea.Msg { return payload })
		}
		return r, r.page().Init()

	case LoginResult:
		if msg.Err == nil {
			cmd := r.forward(msg)
			return r, tea.Batch(cmd, func() tea.Msg { return NavigateTo{Page: pageDashboard} })
		}
	}

	return r, r.forward(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	page := r.page()
	if page == nil {
		return renderPage("Cuide.me", "", "")
	}
	return appStyle.Render(page.View())
}

func (r RootModel) forward(msg tea.Msg) tea.Cmd {
	page := r.page()
	if page == nil {
		return nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return cmd
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) close() {
	if c, ok := r.page().(closer); ok {
		c.Close()
	}
}

// Package model provides Bubble Tea models for the CLI commands.
package model

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gauchobites/gauchobites/internal/cli/styles"
	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/theme"
	"github.com/gauchobites/gauchobites/internal/theme/catalog"
)

// modeItem is one selectable theme mode in the picker.
type modeItem struct {
	mode entity.ThemeMode
	desc string
}

func (i modeItem) FilterValue() string { return i.mode.String() }

// modeDelegate renders mode items with the active theme's styles.
type modeDelegate struct {
	styles *styles.Styles
}

func (d modeDelegate) Height() int                             { return 1 }
func (d modeDelegate) Spacing() int                            { return 0 }
func (d modeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d modeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(modeItem)
	if !ok {
		return
	}

	line := fmt.Sprintf("%-8s %s", it.mode, it.desc)
	if index == m.Index() {
		fmt.Fprint(w, d.styles.ListItemSelected.Render("> "+line))
		return
	}
	fmt.Fprint(w, d.styles.ListItem.Render("  "+line))
}

// pickedMsg reports the result of applying a mode.
type pickedMsg struct {
	err error
}

// PickerModel is an interactive theme-mode selector with a live preview of
// the theme each choice would resolve to.
type PickerModel struct {
	list     list.Model
	resolver *theme.Resolver
	catalog  *catalog.Catalog
	scheme   entity.ColorScheme
	styles   *styles.Styles

	applied bool
	err     error
	ctx     context.Context
}

// NewPickerModel creates the picker positioned on the current mode.
func NewPickerModel(ctx context.Context, resolver *theme.Resolver, cat *catalog.Catalog, scheme entity.ColorScheme) PickerModel {
	items := []list.Item{
		modeItem{mode: entity.ThemeModeLight, desc: "always the light theme"},
		modeItem{mode: entity.ThemeModeDark, desc: "always the dark theme"},
		modeItem{mode: entity.ThemeModeSystem, desc: "follow the OS color scheme"},
	}

	s := styles.FromTheme(resolver.ActiveTheme())

	l := list.New(items, modeDelegate{styles: s}, 44, len(items)+2)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	current := resolver.Mode()
	for i, item := range items {
		if item.(modeItem).mode == current {
			l.Select(i)
			break
		}
	}

	return PickerModel{
		list:     l,
		resolver: resolver,
		catalog:  cat,
		scheme:   scheme,
		styles:   s,
		ctx:      ctx,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			return m, m.apply()
		}
	case pickedMsg:
		m.applied = msg.err == nil
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) apply() tea.Cmd {
	item, ok := m.list.SelectedItem().(modeItem)
	if !ok {
		return tea.Quit
	}
	return func() tea.Msg {
		return pickedMsg{err: m.resolver.SetThemeMode(m.ctx, item.mode)}
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.applied {
		item := m.list.SelectedItem().(modeItem)
		return m.styles.SuccessStyle.Render(fmt.Sprintf("theme mode set to %s\n", item.mode))
	}
	if m.err != nil {
		return m.styles.ErrorStyle.Render(fmt.Sprintf("failed to set theme mode: %v\n", m.err))
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Theme mode"))
	b.WriteString(" ")
	b.WriteString(m.styles.BadgeMuted.Render("current: " + m.resolver.Mode().String()))
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.previewLine())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Subtle.Render("enter apply · q cancel"))
	b.WriteString("\n")
	return b.String()
}

// previewLine shows which theme the highlighted mode would resolve to.
func (m PickerModel) previewLine() string {
	item, ok := m.list.SelectedItem().(modeItem)
	if !ok {
		return ""
	}

	resolved := theme.Derive(m.catalog, item.mode, m.scheme)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(resolved.Colors.Accent)).
		Render("  ")
	return fmt.Sprintf("%s resolves to the %s theme", swatch, resolved.Mode)
}

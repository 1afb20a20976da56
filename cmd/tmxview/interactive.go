package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/retroblast-engine/tmx"
	"github.com/retroblast-engine/tmx/tree"
)

type keyMap struct {
	Up, Down, Enter, Back, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open group")),
	Back:  key.NewBinding(key.WithKeys("backspace", "esc"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browser walks the layer hierarchy with a zipper. The focus is always a
// group; selected indexes its children.
type browser struct {
	name     string
	zip      tree.Zipper[tmx.TiledLayer]
	help     help.Model
	notice   string
	selected int
}

func newBrowser(name string, m *tmx.TiledMap) *browser {
	return &browser{
		name: name,
		zip:  tree.NewZipper(m.Layers),
		help: help.New(),
	}
}

func (b *browser) Init() tea.Cmd {
	return nil
}

func (b *browser) children() []tmx.LayerHierarchy {
	return b.zip.Focus().Children
}

func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width

	case tea.KeyMsg:
		b.notice = ""
		switch {
		case key.Matches(msg, keys.Quit):
			return b, tea.Quit

		case key.Matches(msg, keys.Up):
			if b.selected > 0 {
				b.selected--
			}

		case key.Matches(msg, keys.Down):
			if b.selected < len(b.children())-1 {
				b.selected++
			}

		case key.Matches(msg, keys.Enter):
			kids := b.children()
			if len(kids) == 0 {
				break
			}
			target := kids[b.selected].Value
			z, ok := b.zip.GoTo(func(l tmx.TiledLayer) bool { return l == target })
			if !ok {
				b.notice = target.Info().Name + " is not a group"
				break
			}
			b.zip = z
			b.selected = 0

		case key.Matches(msg, keys.Back):
			from := b.zip.Value()
			z, ok := b.zip.GoUp()
			if !ok {
				break
			}
			b.zip = z
			b.selected = 0
			for i, c := range b.children() {
				if c.Value == from {
					b.selected = i
				}
			}
		}
	}
	return b, nil
}

// breadcrumb names the groups from the root down to the focus.
func (b *browser) breadcrumb() string {
	var names []string
	for _, l := range b.zip.Ancestors() {
		names = append(names, l.Info().Name)
	}
	names = append(names, b.zip.Value().Info().Name)
	return strings.Join(names, " / ")
}

func (b *browser) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TMX"))
	s.WriteString(" ")
	s.WriteString(b.name)
	s.WriteString("\n")
	s.WriteString(b.breadcrumb())
	s.WriteString("\n\n")

	kids := b.children()
	if len(kids) == 0 {
		s.WriteString(hiddenStyle.Render("(empty group)"))
		s.WriteString("\n")
	}
	for i, c := range kids {
		line := layerLabel(c.Value)
		if c.IsNode() {
			line += "/"
		}
		if i == b.selected {
			s.WriteString(selectedStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	if len(kids) > 0 {
		s.WriteString("\n")
		s.WriteString(details(kids[b.selected].Value))
		s.WriteString("\n")
	}
	if b.notice != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(b.notice))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(b.help.View(keys))
	return s.String()
}

func runInteractive(name string, m *tmx.TiledMap) error {
	p := tea.NewProgram(newBrowser(name, m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

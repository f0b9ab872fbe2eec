package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/locale"
)

// SettingsTarget is implemented by games whose configuration can be edited
// while playing.
type SettingsTarget interface {
	Config() config.SeesawConfig
	ApplySettings(cfg config.SeesawConfig) error
	Translator() locale.Translator
}

// errInvalidNumber marks a field that does not hold a whole number.
var errInvalidNumber = errors.New("not a whole number")

type settingsField int

const (
	fieldColorPreset settingsField = iota
	fieldSeesawStyle
	fieldLeftMin
	fieldLeftMax
	fieldRightMin
	fieldRightMax
	fieldMinWeight
	fieldMaxWeight
	fieldApply
	fieldCancel
	fieldCount
)

// numberField binds a text input to one spawn bound.
type numberField struct {
	field    settingsField
	label    string
	isMin    bool
	limit    int
	bound    func(p *config.PieceBounds) *int
	rangeErr error // Reported on this field when its range is inverted
}

var numberFields = []numberField{
	{fieldLeftMin, "settings.left_min", true, config.MaxPiecesPerSide, func(p *config.PieceBounds) *int { return &p.LeftMin }, nil},
	{fieldLeftMax, "settings.left_max", false, config.MaxPiecesPerSide, func(p *config.PieceBounds) *int { return &p.LeftMax }, config.ErrLeftRange},
	{fieldRightMin, "settings.right_min", true, config.MaxPiecesPerSide, func(p *config.PieceBounds) *int { return &p.RightMin }, nil},
	{fieldRightMax, "settings.right_max", false, config.MaxPiecesPerSide, func(p *config.PieceBounds) *int { return &p.RightMax }, config.ErrRightRange},
	{fieldMinWeight, "settings.min_weight", true, config.MaxPieceWeight, func(p *config.PieceBounds) *int { return &p.MinWeight }, nil},
	{fieldMaxWeight, "settings.max_weight", false, config.MaxPieceWeight, func(p *config.PieceBounds) *int { return &p.MaxWeight }, config.ErrWeightRange},
}

// fieldLimit returns the largest value a number field accepts, or 0.
func fieldLimit(f settingsField) int {
	for _, nf := range numberFields {
		if nf.field == f {
			return nf.limit
		}
	}
	return 0
}

// SettingsKeyMap defines the key bindings of the settings form.
type SettingsKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Change  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Change, k.Confirm, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Change}, {k.Confirm, k.Cancel}}
}

// NewSettingsKeyMap returns the form bindings with help in the player's language.
func NewSettingsKeyMap(tr locale.Translator) SettingsKeyMap {
	return SettingsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", tr.T("settings.key.move")),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab/↑", tr.T("settings.key.move")),
		),
		Change: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", tr.T("settings.key.change")),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T("settings.key.confirm")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", tr.T("settings.key.cancel")),
		),
	}
}

// SettingsModel is the settings form shown over the board.
type SettingsModel struct {
	tr     locale.Translator
	base   config.SeesawConfig
	preset int // Index into config.ColorPresets
	style  int // Index into config.SeesawStyles
	inputs map[settingsField]*textinput.Model
	focus  settingsField
	keys   SettingsKeyMap
	help   help.Model

	done    bool
	applied bool
}

// NewSettingsModel creates a form pre-filled from cfg.
func NewSettingsModel(cfg config.SeesawConfig, tr locale.Translator) SettingsModel {
	m := SettingsModel{
		tr:     tr,
		base:   cfg,
		preset: max(0, lo.IndexOf(config.ColorPresets, cfg.Appearance.ColorPreset)),
		style:  max(0, lo.IndexOf(config.SeesawStyles, cfg.Appearance.SeesawStyle)),
		inputs: make(map[settingsField]*textinput.Model, len(numberFields)),
		keys:   NewSettingsKeyMap(tr),
		help:   help.New(),
	}
	for _, nf := range numberFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 2
		ti.Width = 4
		ti.SetValue(strconv.Itoa(*nf.bound(&cfg.Pieces)))
		m.inputs[nf.field] = &ti
	}
	return m
}

// Done reports whether the form was closed.
func (m SettingsModel) Done() bool {
	return m.done
}

// Applied reports whether the form was closed with Apply.
func (m SettingsModel) Applied() bool {
	return m.applied
}

// Result returns the configuration the form describes.
func (m SettingsModel) Result() config.SeesawConfig {
	cfg, _, _ := m.evaluate()
	return cfg
}

// evaluate builds the configuration the form describes. Field errors hold
// translation keys; err is non-nil when the configuration cannot be applied.
func (m SettingsModel) evaluate() (cfg config.SeesawConfig, fieldErrs map[settingsField]string, err error) {
	cfg = m.base
	cfg.Appearance.ColorPreset = config.ColorPresets[m.preset]
	cfg.Appearance.SeesawStyle = config.SeesawStyles[m.style]
	fieldErrs = make(map[settingsField]string)

	for _, nf := range numberFields {
		v, perr := strconv.Atoi(strings.TrimSpace(m.inputs[nf.field].Value()))
		if perr != nil {
			fieldErrs[nf.field] = "settings.err.number"
			continue
		}
		*nf.bound(&cfg.Pieces) = v
	}
	if len(fieldErrs) > 0 {
		return cfg, fieldErrs, errInvalidNumber
	}

	err = cfg.Validate()
	for _, nf := range numberFields {
		switch {
		case *nf.bound(&cfg.Pieces) > nf.limit:
			fieldErrs[nf.field] = "settings.err.too_large"
		case nf.isMin && *nf.bound(&cfg.Pieces) < 1 && errors.Is(err, config.ErrBelowOne):
			fieldErrs[nf.field] = "settings.err.below_one"
		case nf.rangeErr != nil && errors.Is(err, nf.rangeErr):
			fieldErrs[nf.field] = "settings.err.range"
		}
	}
	return cfg, fieldErrs, err
}

// Update handles a message while the form is open.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.done = true
		return m, nil

	case key.Matches(keyMsg, m.keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(keyMsg, m.keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(keyMsg, m.keys.Confirm):
		switch m.focus {
		case fieldApply:
			if _, _, err := m.evaluate(); err == nil {
				m.done = true
				m.applied = true
			}
			return m, nil
		case fieldCancel:
			m.done = true
			return m, nil
		default:
			return m.setFocus(m.focus + 1)
		}

	case key.Matches(keyMsg, m.keys.Change) && m.focus == fieldColorPreset:
		m.preset = cycle(m.preset, len(config.ColorPresets), keyMsg.String() == "right")
		return m, nil

	case key.Matches(keyMsg, m.keys.Change) && m.focus == fieldSeesawStyle:
		m.style = cycle(m.style, len(config.SeesawStyles), keyMsg.String() == "right")
		return m, nil
	}

	return m.updateInput(keyMsg)
}

// updateInput forwards a message to the focused number field.
func (m SettingsModel) updateInput(msg tea.Msg) (SettingsModel, tea.Cmd) {
	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	updated, cmd := ti.Update(msg)
	*ti = updated
	return m, cmd
}

func (m SettingsModel) setFocus(f settingsField) (SettingsModel, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	for field, ti := range m.inputs {
		if field == f {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return m, cmd
}

func cycle(i, n int, forward bool) int {
	if forward {
		return (i + 1) % n
	}
	return (i + n - 1) % n
}

// View renders the form centered in a width x height area.
func (m SettingsModel) View(width, height int) string {
	_, fieldErrs, err := m.evaluate()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	labels := map[settingsField]string{
		fieldColorPreset: m.tr.T("settings.color_preset"),
		fieldSeesawStyle: m.tr.T("settings.seesaw_style"),
	}
	for _, nf := range numberFields {
		labels[nf.field] = m.tr.T(nf.label)
	}
	labelWidth := lo.Max(lo.Map(lo.Values(labels), func(s string, _ int) int {
		return lipgloss.Width(s)
	}))
	labelStyle := lipgloss.NewStyle().Width(labelWidth + 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.tr.T("settings.title")))
	b.WriteString("\n\n")

	for f := fieldColorPreset; f < fieldApply; f++ {
		cursor := "  "
		label := labelStyle.Render(labels[f])
		if f == m.focus {
			cursor = "> "
			label = focusStyle.Inherit(labelStyle).Render(labels[f])
		}

		var value string
		switch f {
		case fieldColorPreset:
			value = fmt.Sprintf("< %s >", m.tr.T("preset."+string(config.ColorPresets[m.preset])))
		case fieldSeesawStyle:
			value = fmt.Sprintf("< %s >", m.tr.T("style."+string(config.SeesawStyles[m.style])))
		default:
			value = m.inputs[f].View()
			if msg, ok := fieldErrs[f]; ok {
				value += "  " + errStyle.Render(m.tr.T(msg, fieldLimit(f)))
			}
		}
		b.WriteString(cursor + label + value + "\n")
	}
	b.WriteString("\n")

	apply := fmt.Sprintf("[ %s ]", m.tr.T("settings.apply"))
	cancel := fmt.Sprintf("[ %s ]", m.tr.T("settings.cancel"))
	switch {
	case err != nil:
		apply = dimStyle.Render(apply)
	case m.focus == fieldApply:
		apply = focusStyle.Render(apply)
	}
	if m.focus == fieldCancel {
		cancel = focusStyle.Render(cancel)
	}
	b.WriteString("  " + apply + "  " + cancel + "\n")

	if err != nil {
		b.WriteString("\n" + errStyle.Render(m.tr.T("settings.invalid", config.MaxPiecesPerSide, config.MaxPieceWeight)) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(m.help.View(m.keys)))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("208")).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

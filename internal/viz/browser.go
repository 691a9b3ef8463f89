package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/det-lab/reaction-kinematics/internal/kinematics"
	"github.com/det-lab/reaction-kinematics/internal/mathx"
	"github.com/det-lab/reaction-kinematics/internal/unit"
)

const (
	chartWidth  = 56
	chartHeight = 14
	pageStep    = 25
)

var (
	chartStyle  = lipgloss.NewStyle().Padding(1, 2)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var energyCycle = []unit.Energy{unit.MeV, unit.KeV, unit.GeV, unit.TeV}

// observables are the columns the chart can plot against coscm.
var observables = []string{
	kinematics.ColTheta3,
	kinematics.ColTheta4,
	kinematics.ColE3,
	kinematics.ColE4,
	kinematics.ColV3,
	kinematics.ColV4,
	kinematics.ColP3,
	kinematics.ColP4,
}

// Browser is an interactive viewer over a solved reaction table.
type Browser struct {
	label    string
	rxn      *kinematics.Reaction
	tab      *kinematics.Table
	cursor   int
	selected int
	angle    unit.Angle
	energy   unit.Energy
	showHelp bool
	width    int
	height   int
}

// NewBrowser builds a browser positioned at coscm = 0.
func NewBrowser(label string, rxn *kinematics.Reaction) Browser {
	tab := rxn.Table()
	return Browser{
		label:    label,
		rxn:      rxn,
		tab:      tab,
		cursor:   len(tab.Rows) / 2,
		selected: 2, // e3
		angle:    unit.Deg,
		energy:   unit.MeV,
	}
}

func (b Browser) Init() tea.Cmd { return nil }

// Update handles key navigation and unit switching.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h":
			b.move(-1)
		case "right", "l":
			b.move(1)
		case "pgup":
			b.move(-pageStep)
		case "pgdown":
			b.move(pageStep)
		case "home":
			b.cursor = 0
		case "end":
			b.cursor = len(b.tab.Rows) - 1
		case "tab", "down", "j":
			b.selected = (b.selected + 1) % len(observables)
		case "shift+tab", "up", "k":
			b.selected = (b.selected + len(observables) - 1) % len(observables)
		case "u":
			if b.angle == unit.Deg {
				b.angle = unit.Rad
			} else {
				b.angle = unit.Deg
			}
		case "e":
			for i, u := range energyCycle {
				if u == b.energy {
					b.energy = energyCycle[(i+1)%len(energyCycle)]
					break
				}
			}
		case "t":
			col, _ := b.tab.Column(observables[b.selected])
			b.cursor = mathx.Argmax(col)
		case "?":
			b.showHelp = !b.showHelp
		}
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	}
	return b, nil
}

func (b *Browser) move(delta int) {
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor >= len(b.tab.Rows) {
		b.cursor = len(b.tab.Rows) - 1
	}
}

// display converts a base-unit value into the active display units.
func (b Browser) display(kind kinematics.Kind, v float64) float64 {
	switch kind {
	case kinematics.KindAngle:
		return b.angle.FromRad(v)
	case kinematics.KindEnergy, kinematics.KindMomentum:
		return b.energy.FromMeV(v)
	}
	return v
}

func (b Browser) columnLabel(name string) string {
	kind, _ := kinematics.ColumnKind(name)
	switch kind {
	case kinematics.KindAngle:
		return fmt.Sprintf("%s [%s]", name, b.angle)
	case kinematics.KindEnergy:
		return fmt.Sprintf("%s [%s]", name, b.energy)
	case kinematics.KindMomentum:
		return fmt.Sprintf("%s [%s/c]", name, b.energy)
	}
	return name
}

// View renders the chart beside the row detail panel.
func (b Browser) View() string {
	name := observables[b.selected]
	kind, _ := kinematics.ColumnKind(name)

	xs, _ := b.tab.Column(kinematics.ColCosCM)
	raw, _ := b.tab.Column(name)
	ys := make([]float64, len(raw))
	for i, v := range raw {
		ys[i] = b.display(kind, v)
	}
	chart := chartStyle.Render(Curve(xs, ys, chartWidth, chartHeight, kinematics.ColCosCM, b.columnLabel(name)))

	var s strings.Builder
	s.WriteString(headerStyle.Render(b.label) + "\n")
	s.WriteString(fmt.Sprintf("beam %.6g %s\n\n", b.energy.FromMeV(b.rxn.Ek), b.energy))

	row := b.tab.Rows[b.cursor]
	s.WriteString(fmt.Sprintf("sample %d/%d\n\n", b.cursor, len(b.tab.Rows)-1))
	for _, col := range kinematics.Columns() {
		v, _ := row.Value(col)
		k, _ := kinematics.ColumnKind(col)
		line := labelStyle.Render(b.columnLabel(col)) + valueStyle.Render(fmt.Sprintf("%12.6g", b.display(k, v)))
		if col == name {
			line = activeStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		s.WriteString(line + "\n")
	}

	s.WriteString("\nINVARIANTS\n")
	s.WriteString(labelStyle.Render("Q") + valueStyle.Render(fmt.Sprintf("%12.6g %s", b.energy.FromMeV(b.rxn.Q()), b.energy)) + "\n")
	s.WriteString(labelStyle.Render("pcm") + valueStyle.Render(fmt.Sprintf("%12.6g %s/c", b.energy.FromMeV(b.rxn.Pcm), b.energy)) + "\n")
	s.WriteString(labelStyle.Render("pcm'") + valueStyle.Render(fmt.Sprintf("%12.6g %s/c", b.energy.FromMeV(b.rxn.Pcmp), b.energy)) + "\n")
	s.WriteString(labelStyle.Render("rapidity") + valueStyle.Render(fmt.Sprintf("%12.6g", b.rxn.Rapidity)) + "\n")
	if b.rxn.Max3 != nil {
		s.WriteString(labelStyle.Render("theta3 max") + valueStyle.Render(fmt.Sprintf("%12.6g %s", b.angle.FromRad(b.rxn.Max3.ThetaMax), b.angle)) + "\n")
	}
	if b.rxn.Max4 != nil {
		s.WriteString(labelStyle.Render("theta4 max") + valueStyle.Render(fmt.Sprintf("%12.6g %s", b.angle.FromRad(b.rxn.Max4.ThetaMax), b.angle)) + "\n")
	}

	e3s, _ := b.tab.Column(kinematics.ColE3)
	for i, v := range e3s {
		e3s[i] = b.energy.FromMeV(v)
	}
	if len(e3s) > 1 {
		spark := asciigraph.Plot(e3s,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption(b.columnLabel(kinematics.ColE3)))
		s.WriteString(graphStyle.Render(spark) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\n←→:Angle Tab:Observable T:Peak\nU:deg/rad E:Energy-Unit ?:Help Q:Quit"))

	panel := panelStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, chart, panel)

	if b.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Left/H    - Previous angle sample   ║
║  Right/L   - Next angle sample       ║
║  PgUp/PgDn - Jump 25 samples         ║
║  Home/End  - First/last sample       ║
║  Tab       - Cycle the observable    ║
║  T         - Jump to observable peak ║
║  U         - Toggle deg/rad          ║
║  E         - Cycle energy unit       ║
║  ?         - Toggle this help        ║
║  Q         - Quit                    ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gravwave/internal/scene"
	"github.com/san-kum/gravwave/internal/wave"
)

const (
	canvasWidth  = 90
	canvasHeight = 26
	// Drawing every grid line swamps a terminal; thin the mesh.
	meshStride = 2
)

type TickMsg time.Time

// Model animates the deformation field on a braille canvas in the terminal.
// It advances its own clock; nothing is encoded or written.
type Model struct {
	src     wave.Source
	grid    wave.Grid
	camera  scene.Camera
	canvas  *Canvas
	fps     int
	t       float64
	frame   int
	running bool
}

func NewModel(src wave.Source, grid wave.Grid, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		src:     src,
		grid:    grid,
		camera:  scene.NewCamera(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		fps:     fps,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
			m.frame = 0
		case "+", "=":
			m.src.AmplitudeScale *= 1.1
		case "-", "_":
			m.src.AmplitudeScale /= 1.1
		case "x":
			m.camera.Elev += 5
		case "X":
			m.camera.Elev -= 5
		case "z":
			m.camera.Azim += 5
		case "Z":
			m.camera.Azim -= 5
		}
	case TickMsg:
		if m.running {
			m.t += 1.0 / float64(m.fps)
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

// draw projects a thinned surface mesh and the two markers onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()

	subW, subH := canvasWidth*2, canvasHeight*4
	pixPerUnit := float64(subH) / (m.grid.Extent * 4)

	field := m.src.Deformation(m.grid, m.t)

	project := func(x, y, z float64) (int, int) {
		px, py, _ := m.camera.Project(scene.Vec3{X: x, Y: y, Z: z}, subW, subH, pixPerUnit)
		return int(px), int(py)
	}

	for row := 0; row < m.grid.N; row += meshStride {
		prevX, prevY := 0, 0
		for col := 0; col < m.grid.N; col += meshStride {
			x, y := m.grid.At(row, col)
			px, py := project(x, y, field.At(row, col))
			if col > 0 {
				m.canvas.DrawLine(prevX, prevY, px, py)
			}
			prevX, prevY = px, py
		}
	}

	p1, p2 := m.src.Positions(m.t)
	z1 := m.src.DisplacementAt(p1.X, p1.Y, m.t) + 0.9
	z2 := m.src.DisplacementAt(p2.X, p2.Y, m.t) + 0.9
	x, y := project(p1.X, p1.Y, z1)
	m.canvas.FillDot(x, y, 2)
	x, y = project(p2.X, p2.Y, z2)
	m.canvas.FillDot(x, y, 2)
}

func (m Model) View() string {
	m.draw()

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVITATIONAL WAVE — LIVE") + "\n")
	s.WriteString(canvasStyle.Render(m.canvas.String()))
	s.WriteString("\n")
	stats := []struct{ label, value string }{
		{"status", status},
		{"time", fmt.Sprintf("%.2fs", m.t)},
		{"frame", fmt.Sprintf("%d", m.frame)},
		{"amplitude", fmt.Sprintf("%.2fx", m.src.AmplitudeScale)},
		{"separation", fmt.Sprintf("%.2f", m.src.Separation)},
	}
	for _, st := range stats {
		s.WriteString(labelStyle.Render(st.label) + valueStyle.Render(st.value) + "\n")
	}
	s.WriteString(helpStyle.Render("space pause · r reset · +/- amplitude · x/X z/Z camera · q quit"))
	return s.String()
}

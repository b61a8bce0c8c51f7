package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reyamade/komago/pkg/engine"
	"github.com/reyamade/komago/pkg/game"
	"github.com/reyamade/komago/pkg/shogi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// engineMoveMsg carries the engine's reply back into the update loop.
type engineMoveMsg struct {
	move   shogi.Move
	result game.Result
}

type Model struct {
	g        *game.Game
	thinking bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "command..."
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 60

	return Model{
		g:     game.New(engine.Medium),
		m:     modeNormal,
		input: ti,
		logLines: []string{
			"you play sente (bottom). press i to enter a command.",
			"commands: move r c r c [+] | drop <piece> r c | hint | new [easy|medium|hard] | quit",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case engineMoveMsg:
		m.thinking = false
		if msg.result.Err != "" {
			m.appendLog("engine: " + msg.result.Err)
		} else {
			m.appendLog("engine plays " + msg.move.String())
		}
		if msg.result.GameOver {
			m.appendLog(fmt.Sprintf("game over: %s wins by %s", msg.result.Winner, msg.result.Cause))
		}
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				cmdline := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if cmdline != "" {
					return m.execCommand(cmdline)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) execCommand(line string) (tea.Model, tea.Cmd) {
	m.appendLog("> " + line)
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "quit", "exit":
		return m, tea.Quit

	case "new":
		if m.thinking {
			m.appendLog("engine is thinking")
			return m, nil
		}
		level := engine.Medium
		if len(parts) > 1 {
			var err error
			level, err = engine.ParseLevel(parts[1])
			if err != nil {
				m.appendLog(err.Error())
				return m, nil
			}
		}
		m.g = game.New(level)
		m.appendLog("new game, difficulty " + level.String())
		return m, nil

	case "hint":
		if m.thinking {
			m.appendLog("engine is thinking")
			return m, nil
		}
		move, err := m.g.Engine.GetMove(m.g.Board, m.g.Board.Turn())
		if err != nil {
			m.appendLog("hint: " + err.Error())
			return m, nil
		}
		m.appendLog("hint: " + move.String())
		return m, nil

	case "move":
		return m.execMove(parts[1:])

	case "drop":
		return m.execDrop(parts[1:])

	default:
		m.appendLog("unknown command: " + parts[0])
		return m, nil
	}
}

func (m Model) execMove(args []string) (tea.Model, tea.Cmd) {
	if m.thinking {
		m.appendLog("engine is thinking")
		return m, nil
	}
	promote := false
	if len(args) == 5 && args[4] == "+" {
		promote = true
		args = args[:4]
	}
	if len(args) != 4 {
		m.appendLog("usage: move fromRow fromCol toRow toCol [+]")
		return m, nil
	}
	var nums [4]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			m.appendLog("bad coordinate: " + a)
			return m, nil
		}
		nums[i] = n
	}
	from := shogi.Square{Row: nums[0], Col: nums[1]}
	to := shogi.Square{Row: nums[2], Col: nums[3]}

	res := m.g.PlayMove(from, to, promote)
	return m.afterPlayerAction(res)
}

func (m Model) execDrop(args []string) (tea.Model, tea.Cmd) {
	if m.thinking {
		m.appendLog("engine is thinking")
		return m, nil
	}
	if len(args) != 3 {
		m.appendLog("usage: drop <piece> row col")
		return m, nil
	}
	kind, err := shogi.ParsePieceKind(args[0])
	if err != nil {
		m.appendLog(err.Error())
		return m, nil
	}
	row, err1 := strconv.Atoi(args[1])
	col, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		m.appendLog("bad coordinates")
		return m, nil
	}

	res := m.g.PlayDrop(kind, shogi.Square{Row: row, Col: col})
	return m.afterPlayerAction(res)
}

func (m Model) afterPlayerAction(res game.Result) (tea.Model, tea.Cmd) {
	if !res.Success {
		m.appendLog(res.Err)
		return m, nil
	}
	if res.GameOver {
		m.appendLog(fmt.Sprintf("game over: %s wins by %s", res.Winner, res.Cause))
		return m, nil
	}
	m.thinking = true
	g := m.g
	return m, func() tea.Msg {
		move, result := g.EngineMove()
		return engineMoveMsg{move: move, result: result}
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 100 {
		m.logLines = m.logLines[len(m.logLines)-100:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	status := "your move (sente)"
	if m.thinking {
		status = "engine thinking..."
	}
	if m.g.Over() {
		status = "game over"
	}
	header := titleStyle.Render(fmt.Sprintf("komago  [%s]  difficulty:%s", status, m.g.Engine.Difficulty()))

	board := boxStyle.Render(RenderBoard(m.g.Board) + RenderHands(m.g.Board))

	logHeight := 8
	logStart := 0
	if len(m.logLines) > logHeight {
		logStart = len(m.logLines) - logHeight
	}
	logBox := boxStyle.Render(strings.Join(m.logLines[logStart:], "\n"))

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a command, q to quit"
	}
	inputBox := boxStyle.Render(inputLine)

	return header + "\n" + board + "\n" + logBox + "\n" + inputBox + "\n"
}

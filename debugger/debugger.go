package debugger

import (
	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"

	"github.com/handegar/aicac/compiler"
	"github.com/pkg/errors"
)

var lastProg *compiler.Program

var boxTitleStyle = termui.NewStyle(termui.ColorRed, termui.ColorBlue)

// Inspect opens the interactive step-table viewer on the compiled
// program and blocks until the user quits.
func Inspect(prog *compiler.Program) error {
	if prog.NumSteps() == 0 {
		return errors.New("Nothing to inspect: the program is empty")
	}
	if err := ui.Init(); err != nil {
		return errors.Wrap(err, "Could not initialize the terminal UI")
	}
	defer ui.Close()

	initUiState()
	UpdateScreen(prog)

	for {
		if WaitForInput() == "quit" {
			return nil
		}
	}
}

func UpdateScreen(prog *compiler.Program) {
	lastProg = prog

	switch uiState.currentScreen {
	case HelpScreen:
		renderHelpScreen()
	case TableScreen:
		renderTableScreen(prog)
	case MainScreen:
		renderMainScreen(prog)
	}
}

/*
Returns the Event.ID string for events which is relevant for others
(quit etc.)
*/
func WaitForInput() string {
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			if uiState.currentScreen != MainScreen {
				uiState.currentScreen = MainScreen
				UpdateScreen(lastProg)
				continue
			}
			return "quit"
		case "n", "<Down>":
			moveCursor(1)
		case "p", "<Up>":
			moveCursor(-1)
		case "<PageDown>":
			moveCursor(16)
		case "<PageUp>":
			moveCursor(-16)
		case "g":
			setCursor(0)
		case "G":
			setCursor(lastProg.NumSteps() - 1)
		case "t", "<F2>":
			if uiState.currentScreen == TableScreen {
				uiState.currentScreen = MainScreen
			} else {
				uiState.currentScreen = TableScreen
			}
			UpdateScreen(lastProg)
		case "h", "<F1>", "?":
			if uiState.currentScreen == HelpScreen {
				uiState.currentScreen = MainScreen
			} else {
				uiState.currentScreen = HelpScreen
			}
			UpdateScreen(lastProg)
		case "<Resize>":
			width, height := termui.TerminalDimensions()
			uiState.terminalWidth = width
			uiState.terminalHeight = height
			uiState.centerLine = max(width/2, 40)
			UpdateScreen(lastProg)
		}
	}

	return ""
}

func moveCursor(delta int) {
	setCursor(uiState.stepCursor + delta)
}

func setCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= lastProg.NumSteps() {
		pos = lastProg.NumSteps() - 1
	}
	uiState.stepCursor = pos
	UpdateScreen(lastProg)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

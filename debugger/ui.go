package debugger

import (
	"fmt"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/aicac/base"
	"github.com/handegar/aicac/compiler"
	"github.com/handegar/aicac/disasm"
	"github.com/handegar/aicac/settings"
)

const (
	MainScreen int = iota
	TableScreen
	HelpScreen
)

type UIState struct {
	terminalWidth  int
	terminalHeight int
	centerLine     int

	currentScreen int
	stepCursor    int

	stepListView    *widgets.Paragraph
	fieldsView      *widgets.Paragraph
	docsView        *widgets.Paragraph
	helpLineView    *widgets.Paragraph
	versionLineView *widgets.Paragraph
}

var uiState UIState

func initUiState() {
	width, height := termui.TerminalDimensions()
	uiState.terminalWidth = width
	uiState.terminalHeight = height
	uiState.centerLine = max(width/2, 40)
	uiState.currentScreen = MainScreen
	uiState.stepCursor = 0
}

func renderMainScreen(prog *compiler.Program) {
	updateStepListView(prog)
	updateFieldsView(prog)
	updateDocsView(prog)
	updateHelpLineView()
	updateVersionLineView()

	ui.Render(uiState.stepListView, uiState.fieldsView, uiState.docsView,
		uiState.helpLineView, uiState.versionLineView)
}

// Prints the step table with a highlighted current step
func updateStepListView(prog *compiler.Program) {
	width := uiState.centerLine
	height := uiState.terminalHeight - 1

	listing := ""
	visible := height - 2
	first := 0
	if uiState.stepCursor >= visible {
		first = uiState.stepCursor - visible + 1
	}

	for i := first; i < prog.NumSteps() && i < first+visible; i++ {
		line := fmt.Sprintf("%3d:%s", i, disasm.FieldsString(prog.Steps[i]))
		if i == uiState.stepCursor {
			listing += fmt.Sprintf("[%s](fg:black,bg:yellow)\n", line)
		} else {
			listing += line + "\n"
		}
	}

	view := widgets.NewParagraph()
	view.Title = fmt.Sprintf("  Steps (%d of %d)  ",
		prog.NumSteps(), settings.MaxNumberOfSteps)
	view.TitleStyle = boxTitleStyle
	view.Text = listing
	view.SetRect(0, 0, width, height)

	uiState.stepListView = view
}

// Prints the decoded fields of the current step, with raw word and
// coefficient
func updateFieldsView(prog *compiler.Program) {
	twidth := uiState.terminalWidth
	hPos := uiState.centerLine
	step := prog.Steps[uiState.stepCursor]

	text := fmt.Sprintf(" [Word:](fg:yellow,mod:bold) 0x%016x\n", uint64(step))
	if prog.Coefs[uiState.stepCursor] != 0 {
		text += fmt.Sprintf(" [COEF:](fg:yellow) %d\n",
			prog.Coefs[uiState.stepCursor])
	}
	text += "\n"

	for _, f := range base.FieldOrder {
		v := f.Get(step)
		if v == 0 {
			continue
		}
		text += fmt.Sprintf(" [%s:](fg:cyan) %d\n", f.Name, v)
	}

	view := widgets.NewParagraph()
	view.Title = fmt.Sprintf("  Step #%d  ", uiState.stepCursor)
	view.TitleStyle = boxTitleStyle
	view.BorderStyle = termui.NewStyle(termui.ColorGreen)
	view.Text = text
	view.SetRect(hPos, 0, twidth, uiState.terminalHeight/2)

	uiState.fieldsView = view
}

// Prints the field documentation for the current step
func updateDocsView(prog *compiler.Program) {
	twidth := uiState.terminalWidth
	theight := uiState.terminalHeight - 1
	hPos := uiState.centerLine
	step := prog.Steps[uiState.stepCursor]

	text := ""
	for _, f := range base.FieldOrder {
		if f.Get(step) == 0 {
			continue
		}
		doc := disasm.FieldDocs[f.Name]
		text += fmt.Sprintf(" [%s](fg:red): [%s](fg:yellow)\n   [%s](fg:cyan)\n",
			f.Name, doc.Short, doc.Long)
	}

	view := widgets.NewParagraph()
	view.Title = "  Info  "
	view.TitleStyle = boxTitleStyle
	view.Text = text
	view.SetRect(hPos, uiState.terminalHeight/2, twidth, theight)

	uiState.docsView = view
}

func updateHelpLineView() {
	width, height := termui.TerminalDimensions()
	helpLine := widgets.NewParagraph()
	helpLine.Text =
		"[ESC/q:](fg:black) Quit [|](fg:white,bg:black) " +
			"[F1/h/?:](fg:black) Help [|](fg:white,bg:black) " +
			"[t/F2:](fg:black) Tables [|](fg:white,bg:black) " +
			"[n/Down:](fg:black) Next step "

	helpLine.Border = false
	helpLine.TextStyle = boxTitleStyle
	helpLine.SetRect(0, height-1, width, height)

	uiState.helpLineView = helpLine
}

func updateVersionLineView() {
	twidth := uiState.terminalWidth
	theight := uiState.terminalHeight

	versionP := widgets.NewParagraph()
	versionP.Border = false
	versionP.PaddingBottom = 0
	versionP.PaddingTop = 0
	versionP.PaddingLeft = 0
	versionP.PaddingRight = 0
	versionP.Text = fmt.Sprintf("[v%s](fg:blue)", settings.Version)
	versionP.SetRect(twidth-len(settings.Version)-6, theight-1,
		twidth-3, theight)

	uiState.versionLineView = versionP
}

// Prints the MADRS definitions and the non-zero coefficients
func renderTableScreen(prog *compiler.Program) {
	frame := widgets.NewParagraph()
	frame.Title = "  MADRS / COEF tables  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, uiState.terminalWidth, uiState.terminalHeight)

	madrs := widgets.NewList()
	madrs.Border = false
	madrs.TextStyle = termui.NewStyle(termui.ColorYellow)

	madrs.Rows = append(madrs.Rows, "MADRS:")
	if len(prog.Madrs) == 0 {
		madrs.Rows = append(madrs.Rows, " [none](fg:white)")
	}
	for _, m := range prog.Madrs {
		madrs.Rows = append(madrs.Rows, fmt.Sprintf(" [%s](fg:white)", m))
	}

	madrs.Rows = append(madrs.Rows, "")
	madrs.Rows = append(madrs.Rows, "COEF:")
	any := false
	for i, c := range prog.Coefs {
		if c == 0 {
			continue
		}
		any = true
		madrs.Rows = append(madrs.Rows,
			fmt.Sprintf(" [COEF[%d] = %d](fg:white)", i, c))
	}
	if !any {
		madrs.Rows = append(madrs.Rows, " [none](fg:white)")
	}

	madrs.SetRect(1, 1, uiState.terminalWidth-1, uiState.terminalHeight-1)

	ui.Render(frame)
	ui.Render(madrs)
}

func renderHelpScreen() {
	frame := widgets.NewParagraph()
	frame.Title = "  Help / Keys  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, uiState.terminalWidth, uiState.terminalHeight)

	keys := widgets.NewList()
	keys.Border = false
	keys.TextStyle = termui.NewStyle(termui.ColorYellow)

	keys.Rows = append(keys.Rows, "Keys:")
	keys.Rows = append(keys.Rows, " h, F1, ?:          [This help-page](fg:white)")
	keys.Rows = append(keys.Rows, " ESC, q, CTRL-C:    [Quit inspector / exit help](fg:white)")
	keys.Rows = append(keys.Rows, " t, F2:             [Show MADRS/COEF tables](fg:white)")
	keys.Rows = append(keys.Rows, " n, DownKey:        [Next step](fg:white)")
	keys.Rows = append(keys.Rows, " p, UpKey:          [Previous step](fg:white)")
	keys.Rows = append(keys.Rows, " PgDn/PgUp:         [Skip 16 steps](fg:white)")
	keys.Rows = append(keys.Rows, " g:                 [First step](fg:white)")
	keys.Rows = append(keys.Rows, " SHIFT-g:           [Last step](fg:white)")

	keys.SetRect(1, 1, uiState.terminalWidth-1, uiState.terminalHeight-1)

	ui.Render(frame)
	ui.Render(keys)
}

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// runTUI shows the decoded listing in a scrollable, bordered text view
// with a status line reporting how decoding ended. color controls
// whether the status line uses tview's color tags or plain text.
func runTUI(lines []string, perr error, color bool) {
	app := tview.NewApplication()

	listing := tview.NewTextView().
		SetDynamicColors(color).
		SetScrollable(true).
		SetWrap(false)
	listing.SetBorder(true).SetTitle(" Disassembly ")
	fmt.Fprint(listing, strings.Join(lines, "\n"))

	status := tview.NewTextView().
		SetDynamicColors(color).
		SetScrollable(false)
	status.SetBorder(true).SetTitle(" Status ")
	switch {
	case perr != nil && color:
		fmt.Fprintf(status, "[red]%v[-]", perr)
	case perr != nil:
		fmt.Fprintf(status, "%v", perr)
	default:
		fmt.Fprintf(status, "%d instructions decoded. q to quit, arrows/PgUp/PgDn to scroll.", len(lines))
	}

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(listing, 0, 5, true).
		AddItem(status, 3, 0, false)

	layout.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(layout, true).SetFocus(listing).Run(); err != nil {
		panic(err)
	}
}

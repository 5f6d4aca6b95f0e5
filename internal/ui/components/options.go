package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// OptionLabels letters the four answer options.
var OptionLabels = []string{"A", "B", "C", "D"}

// OptionList renders the answer options of a question. Before an answer it
// shows a cursor; after one it marks the right option green and a wrong
// pick red.
type OptionList struct {
	Options []string
	Cursor  int

	// Answered is set once the player has chosen; Chosen and Correct are
	// only meaningful then.
	Answered bool
	Chosen   int
	Correct  int
}

// NewOptionList creates an unanswered list with the cursor on the first
// option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Up moves the cursor up one option.
func (o *OptionList) Up() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// Down moves the cursor down one option.
func (o *OptionList) Down() {
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// Reveal records the player's pick and the right answer.
func (o *OptionList) Reveal(chosen, correct int) {
	o.Answered = true
	o.Chosen = chosen
	o.Correct = correct
	o.Cursor = chosen
}

// View renders one line per option.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}

		prefix := "  "
		if !o.Answered && i == o.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Answered && i == o.Correct:
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		case o.Answered && i == o.Chosen:
			b.WriteString(theme.Incorrect.Render(line + "  ✗"))
		case o.Answered:
			b.WriteString(theme.Muted.Render(line))
		case i == o.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

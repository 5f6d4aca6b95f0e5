package components

import (
	"strings"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// Hearts renders remaining lives as filled hearts followed by empty ones.
func Hearts(lives, total int) string {
	lives = min(max(lives, 0), total)

	hearts := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if i < lives {
			hearts = append(hearts, theme.HeartFull.Render("♥"))
		} else {
			hearts = append(hearts, theme.HeartEmpty.Render("♡"))
		}
	}
	return strings.Join(hearts, " ")
}

package components

import (
	"fmt"
	"strings"
)

// Stars renders a 1-5 rating as a star row, e.g. "★★★★☆ 4/5".
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return fmt.Sprintf("%s%s %d/5",
		strings.Repeat("★", rating),
		strings.Repeat("☆", 5-rating),
		rating)
}

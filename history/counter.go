package history

import (
	"fmt"
)

// FormatCounter renders a zero-based index as a 1-based "NN/NN" counter.
func FormatCounter(index, total int) string {
	if index < 0 {
		index = 0
	}
	return fmt.Sprintf("%02d/%02d", index+1, total)
}

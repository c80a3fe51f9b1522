package controllers

import "fmt"

// nextSerial returns the next value of a dated identifier sequence, e.g.
// ("KC-2026", "KC-2026-0007") -> "KC-2026-0008". An empty current value
// starts the sequence at 0001.
func nextSerial(prefix, current string) string {
	n := 0
	if current != "" {
		fmt.Sscanf(current, prefix+"-%d", &n)
	}
	return fmt.Sprintf("%s-%04d", prefix, n+1)
}

package countdown

import (
	"fmt"
	"strconv"
	"strings"
)

const secondsInAMinute = 60

// Format renders seconds as "MM:SS". Minutes are not wrapped into hours, so
// 6000 seconds renders as "100:00".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf(
		"%02d:%02d",
		seconds/secondsInAMinute,
		seconds%secondsInAMinute,
	)
}

// ParseInput converts user input to a duration in seconds. Only strictly
// positive integers are accepted; anything else reports false.
func ParseInput(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

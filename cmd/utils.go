package cmd

import (
	"fmt"
	"strings"
)

var yesAnswers = map[string]bool{
	"y":   true,
	"yes": true,
}

// prompt asks a yes/no question on stdin. Anything but an explicit yes
// counts as no, so a stray enter never drops the database.
func prompt(q string) bool {
	fmt.Print("> " + q + " [Y/N] ")
	var answer string
	fmt.Scan(&answer)
	return yesAnswers[strings.ToLower(answer)]
}

package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
)

// Title macros: "!1".."!4" sets the priority, "!before dd.mm.yyyy" (or
// dd-mm-yyyy) sets the deadline. Macros are an input shorthand only; the
// stored title must not contain them.

var (
	priorityMacroPattern = regexp.MustCompile(`![1-4]`)
	deadlineMacroPattern = regexp.MustCompile(`!before ((0[1-9]|[12][0-9]|3[01])[.-](0[1-9]|1[012])[.-][0-9]{4})`)
)

// ExtractPriority finds the first priority macro in title. On a match it
// removes every occurrence of the matched token and returns the mapped
// priority. Without a match the title comes back unchanged and ok is
// false; the caller picks the default.
func ExtractPriority(title string) (cleaned string, p models.Priority, ok bool) {
	macro := priorityMacroPattern.FindString(title)
	if macro == "" {
		return title, "", false
	}

	cleaned = strings.ReplaceAll(title, macro, "")

	switch macro {
	case "!1":
		p = models.PriorityLow
	case "!2":
		p = models.PriorityMedium
	case "!3":
		p = models.PriorityHigh
	case "!4":
		p = models.PriorityCritical
	}
	return cleaned, p, true
}

// ExtractDeadline finds the first deadline macro in title, removes every
// occurrence of the matched token and parses the date in day-month-year
// order. A dot separator is normalized to a dash before parsing. A macro
// whose digits pass the pattern but do not form a real calendar date
// (e.g. 31.02) fails with ErrInvalidDate. No macro is not an error.
func ExtractDeadline(title string) (string, *time.Time, error) {
	m := deadlineMacroPattern.FindStringSubmatch(title)
	if m == nil {
		return title, nil, nil
	}

	cleaned := strings.ReplaceAll(title, m[0], "")

	dateGroup := strings.ReplaceAll(m[1], ".", "-")
	deadline, err := time.Parse("02-01-2006", dateGroup)
	if err != nil {
		return title, nil, fmt.Errorf("%w: %q: %v", ErrInvalidDate, m[1], err)
	}

	return cleaned, &deadline, nil
}

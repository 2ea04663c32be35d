package model

import (
	"fmt"
	"strings"
)

// ParsePriority accepts user input in any case ("high", "HIGH", " High ").
func ParsePriority(s string) (TaskPriority, error) {
	p := TaskPriority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority %q (want low|medium|high)", s)
	}
	return p, nil
}

// ParseStatus accepts user input in any case.
func ParseStatus(s string) (TaskStatus, error) {
	st := TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status %q (want todo|done|archived)", s)
	}
	return st, nil
}

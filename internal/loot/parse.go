package loot

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports recognized text that is not an amount
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as amount: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as amount", e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var separatorStripper = strings.NewReplacer(",", "", ".", "", " ", "")

// ParseAmount strips thousands separators (commas, periods, spaces) and
// parses what is left as a base-10 integer. Anything other than ASCII digits
// after stripping is a ParseError.
func ParseAmount(text string) (int, error) {
	cleaned := separatorStripper.Replace(text)
	if cleaned == "" {
		return 0, &ParseError{Text: text}
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return 0, &ParseError{Text: text}
		}
	}

	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return value, nil
}

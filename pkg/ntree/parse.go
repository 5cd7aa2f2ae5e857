package ntree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseValues reads integers from each input, split on commas and whitespace.
func ParseValues(inputs ...string) ([]int, error) {
	values := []int{}
	for _, input := range inputs {
		fields := strings.FieldsFunc(input, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("cannot parse value %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

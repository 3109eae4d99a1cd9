package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/HuXin0817/checkers/pkg/models/checkers"
)

var ErrBadInput = errors.New("want two cells like 2,3 3,4")

func numbers(line string) (ns []int, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return !unicode.IsDigit(r)
	})

	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadInput, f)
		}
		ns = append(ns, n)
	}
	return ns, nil
}

// parseMove reads "x,y x,y", any separators allowed.
func parseMove(line string) (checkers.Move, error) {
	ns, err := numbers(line)
	if err != nil {
		return checkers.Move{}, err
	}

	if len(ns) != 4 {
		return checkers.Move{}, ErrBadInput
	}
	return checkers.NewMove(checkers.NewPosition(ns[0], ns[1]), checkers.NewPosition(ns[2], ns[3])), nil
}

func parsePosition(line string) (checkers.Position, error) {
	ns, err := numbers(line)
	if err != nil {
		return checkers.NoPosition, err
	}

	if len(ns) != 2 {
		return checkers.NoPosition, ErrBadInput
	}
	return checkers.NewPosition(ns[0], ns[1]), nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptInt reads integers from r until validate accepts one. Non-integer
// and out-of-range entries print an error and re-prompt; the only terminal
// failure is the input source running dry.
func promptInt(r *bufio.Reader, w io.Writer, label string, validate func(int) error) (int, error) {
	for {
		fmt.Fprint(w, label)

		line, readErr := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if readErr != nil && line == "" {
			if readErr == io.EOF {
				return 0, fmt.Errorf("input closed before a valid value was entered")
			}
			return 0, readErr
		}

		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(w, "Error: Please enter a valid integer.")
		} else if err := validate(v); err != nil {
			fmt.Fprintf(w, "Error: %v.\n", err)
		} else {
			return v, nil
		}

		if readErr != nil {
			return 0, fmt.Errorf("input closed before a valid value was entered")
		}
	}
}

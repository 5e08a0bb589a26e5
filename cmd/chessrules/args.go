package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadArgsFromFileIfSpecified expands "-A file" in os.Args into the arguments
// the file holds, so they are parsed as if given on the command line.
func loadArgsFromFileIfSpecified() {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		name, ok := argsFileName(args, i)
		if !ok {
			continue
		}
		fileArgs, err := loadArgsFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading arguments file %s: %v\n", name, err)
			os.Exit(1)
		}

		consumed := 2
		if strings.Contains(args[i], "=") {
			consumed = 1
		}
		expanded := make([]string, 0, len(args)+len(fileArgs))
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, fileArgs...)
		expanded = append(expanded, args[i+consumed:]...)
		os.Args = append(os.Args[:1], expanded...)
		return
	}
}

// argsFileName reports whether args[i] is an -A flag and returns its file name.
func argsFileName(args []string, i int) (string, bool) {
	arg := args[i]
	switch {
	case arg == "-A" || arg == "--A":
		if i+1 < len(args) {
			return args[i+1], true
		}
	case strings.HasPrefix(arg, "-A="):
		return strings.TrimPrefix(arg, "-A="), true
	case strings.HasPrefix(arg, "--A="):
		return strings.TrimPrefix(arg, "--A="), true
	}
	return "", false
}

// loadArgsFile reads arguments from a file. Blank lines and lines starting
// with # are skipped; the rest are split like a shell would split them.
func loadArgsFile(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var args []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args = append(args, splitArgsLine(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return args, nil
}

// splitArgsLine splits a line on whitespace, keeping single or double quoted
// text together.
func splitArgsLine(line string) []string {
	var args []string
	var current strings.Builder
	inToken := false
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		args = append(args, current.String())
	}
	return args
}

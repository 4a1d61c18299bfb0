package procs

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
)

// handlePattern matches handle.exe output lines like
// "notepad.exe       pid: 3188   type: File  44: C:\temp\foo.txt".
var handlePattern = regexp.MustCompile(`^(\S+)\s+pid:\s+(\d+)`)

// parseLsof extracts handles from tabular lsof output. The first column
// is the command name and the second the PID; the header row and any
// line that fails to parse are ignored.
func parseLsof(output string) []Handle {
	var handles []Handle

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		pid, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			continue // Header row, warnings, garbage
		}

		handles = append(handles, Handle{PID: int32(pid), Name: fields[0]})
	}

	return dedupe(handles)
}

// parseHandle extracts handles from `handle.exe -nobanner` output.
// Lines that do not match the expected shape are ignored.
func parseHandle(output string) []Handle {
	var handles []Handle

	for _, line := range strings.Split(output, "\n") {
		match := handlePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}

		pid, err := strconv.ParseInt(match[2], 10, 32)
		if err != nil {
			continue
		}

		handles = append(handles, Handle{PID: int32(pid), Name: match[1]})
	}

	return dedupe(handles)
}

// parseTasklistCSV extracts handles from `tasklist /V /FO CSV` output,
// keeping rows where any field contains dir as a substring. This is an
// accepted approximation: it matches the literal directory string
// against process command-line text and may produce false
// positives/negatives. Rows that fail to parse are ignored.
func parseTasklistCSV(output, dir string) []Handle {
	reader := csv.NewReader(strings.NewReader(output))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil
	}

	var handles []Handle

	for _, record := range records {
		if len(record) < 2 {
			continue
		}

		pid, err := strconv.ParseInt(record[1], 10, 32)
		if err != nil {
			continue // Header row
		}

		matched := false

		for _, field := range record {
			if strings.Contains(field, dir) {
				matched = true

				break
			}
		}

		if !matched {
			continue
		}

		handles = append(handles, Handle{PID: int32(pid), Name: record[0]})
	}

	return dedupe(handles)
}

package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Entry is one structured log line. Lines that are not JSON objects come back
// with only Message set.
type Entry struct {
	Time    time.Time
	Level   string
	Message string
	Error   string
	Fields  map[string]string
}

// FieldString renders Fields as key=value pairs in key order.
func (e Entry) FieldString() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + e.Fields[k]
	}
	return strings.Join(parts, " ")
}

// Read returns at most maxLines entries from the end of the file at path. A
// missing file yields no entries.
func Read(path string, maxLines int) ([]Entry, error) {
	lines, err := readLines(path, maxLines)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, Parse(line))
	}
	return entries, nil
}

// Parse decodes a logrus JSON line.
func Parse(line string) Entry {
	if !gjson.Valid(line) {
		return Entry{Message: line}
	}
	root := gjson.Parse(line)
	if !root.IsObject() {
		return Entry{Message: line}
	}

	var e Entry
	root.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, value.String()); err == nil {
				e.Time = t
			}
		case "level":
			e.Level = value.String()
		case "msg":
			e.Message = value.String()
		case "error":
			e.Error = value.String()
		default:
			if e.Fields == nil {
				e.Fields = make(map[string]string)
			}
			e.Fields[key.String()] = value.String()
		}
		return true
	})
	return e
}

func readLines(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

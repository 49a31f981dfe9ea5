package importer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ErrMissingSeparator marks lines without the "Title - Artist" divider.
var ErrMissingSeparator = errors.New("line has no \" - \" separator between title and artists")

// leadingNumber strips playlist numbering such as "12. ", "3)" or "7、".
var leadingNumber = regexp.MustCompile(`^\s*\d+\s*[.)、:：]\s*`)

// artistSeparator splits the artist field on both ASCII and full-width
// slashes.
var artistSeparator = regexp.MustCompile(`\s*[/／]\s*`)

// Entry is one parsed playlist line. Err is set for lines that do not
// follow the expected format; such entries still flow through the
// batch so the report accounts for every input line.
type Entry struct {
	Line    int
	Raw     string
	Title   string
	Artists []string
	Err     error
}

// ParseLine splits a single playlist line into title and artists.
// The expected shape is "Title - Artist1 / Artist2", optionally with a
// leading track number.
func ParseLine(line string) (string, []string, error) {
	line = leadingNumber.ReplaceAllString(strings.TrimSpace(line), "")
	if line == "" {
		return "", nil, errors.New("empty line")
	}

	title, artistField, found := strings.Cut(line, " - ")
	if !found {
		return "", nil, ErrMissingSeparator
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, errors.New("line has an empty title")
	}

	var artists []string
	for _, artist := range artistSeparator.Split(artistField, -1) {
		artist = strings.TrimSpace(artist)
		if artist != "" {
			artists = append(artists, artist)
		}
	}
	if len(artists) == 0 {
		return "", nil, errors.New("line has no artists after the separator")
	}
	return title, artists, nil
}

// ParseLines reads a playlist, one song per line. Blank lines and
// lines starting with '#' are skipped; malformed lines become entries
// with Err set.
func ParseLines(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		title, artists, err := ParseLine(raw)
		entries = append(entries, Entry{
			Line:    lineNumber,
			Raw:     trimmed,
			Title:   title,
			Artists: artists,
			Err:     err,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	return entries, nil
}

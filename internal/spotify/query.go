package spotify

import (
	"strings"

	"trackmatch/internal/textnorm"
)

// maxQueryArtists bounds how many artists go into a field-filtered
// search. More than two tends to over-constrain Spotify's search and
// return nothing.
const maxQueryArtists = 2

// BuildTrackQuery assembles a field-filtered search query from a title
// and artists. Bracketed annotations are dropped from the title since
// they rarely appear verbatim in the catalog and poison the search.
func BuildTrackQuery(title string, artists []string) string {
	main, _ := textnorm.SplitAnnotations(title)
	main = strings.Join(strings.Fields(main), " ")

	var builder strings.Builder
	if main != "" {
		builder.WriteString("track:")
		builder.WriteString(main)
	}
	count := 0
	for _, artist := range artists {
		artist = strings.TrimSpace(artist)
		if artist == "" {
			continue
		}
		if count >= maxQueryArtists {
			break
		}
		if builder.Len() > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString("artist:")
		builder.WriteString(artist)
		count++
	}
	return builder.String()
}

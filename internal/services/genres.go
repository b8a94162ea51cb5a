package services

import "strings"

// noGenres is the placeholder MovieLens stores for movies without genre
// information. It never participates in similarity or recommendations.
const noGenres = "(no genres listed)"

// splitGenres breaks the raw pipe-delimited genres field into its parts,
// dropping empties and the no-genres placeholder.
func splitGenres(raw string) []string {
	if raw == "" || raw == noGenres {
		return nil
	}
	parts := strings.Split(raw, "|")
	genres := parts[:0]
	for _, part := range parts {
		if part != "" && part != noGenres {
			genres = append(genres, part)
		}
	}
	return genres
}

func genreSet(genres []string) map[string]struct{} {
	set := make(map[string]struct{}, len(genres))
	for _, genre := range genres {
		set[genre] = struct{}{}
	}
	return set
}

// genreOverlap counts how many of the movie's genres appear in the
// reference set.
func genreOverlap(reference map[string]struct{}, genres []string) int {
	overlap := 0
	for _, genre := range genres {
		if _, ok := reference[genre]; ok {
			overlap++
		}
	}
	return overlap
}

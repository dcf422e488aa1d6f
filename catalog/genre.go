package catalog

import (
	"bytes"
	"fmt"
	"strings"
)

/* Genre is a closed set. The integer value only lives in memory,
 * anything persisted or displayed uses the name.
 */

// Genre type
type Genre int

const (
	Fiction Genre = iota + 1
	Nonfiction
	Periodical
	Biography
	Children
)

var genreNames = map[Genre]string{
	Fiction:    "Fiction",
	Nonfiction: "Nonfiction",
	Periodical: "Periodical",
	Biography:  "Biography",
	Children:   "Children",
}

func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "Unknown"
}

// Validate checks if the genre is one of the known values
func (g Genre) Validate() error {
	if g < Fiction || g > Children {
		return fmt.Errorf("%w: %d", ErrUnknownGenre, g)
	}
	return nil
}

// MarshalJSON encodes the genre by name
func (g Genre) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(g.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// ParseGenre converts a persisted genre name back into a Genre.
// Only the exact names are accepted and there is no default genre.
func ParseGenre(s string) (Genre, error) {
	for g, name := range genreNames {
		if name == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGenre, s)
}

// LookupGenre is ParseGenre for user input: surrounding spaces and case
// are ignored.
func LookupGenre(s string) (Genre, error) {
	for g, name := range genreNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGenre, s)
}

// GenreFromChoice maps the zero-based menu index (0: Fiction ... 4: Children)
func GenreFromChoice(choice int) (Genre, error) {
	g := Genre(choice + 1)
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("%w: choice %d", ErrUnknownGenre, choice)
	}
	return g, nil
}

// Genres lists every genre in menu order
func Genres() []Genre {
	return []Genre{Fiction, Nonfiction, Periodical, Biography, Children}
}

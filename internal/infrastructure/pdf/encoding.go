package pdf

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedGlyph el texto contiene un carácter fuera de cp1252, la
// codificación de las fuentes core (Helvetica) del PDF.
var ErrUnsupportedGlyph = errors.New("pdf: carácter no soportado por la fuente")

// toWinAnsi convierte UTF-8 a cp1252.
func toWinAnsi(s string) (string, error) {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGlyph, s)
	}
	return out, nil
}

package langdetect

import (
	"errors"

	"github.com/abadojack/whatlanggo"

	"ReviewLabeler/internal/ports"
)

// ErrUnreliable signals that the detector could not classify the text with
// enough confidence. Callers map this to their fail-closed default.
var ErrUnreliable = errors.New("language detection unreliable")

// WhatlangDetector implements ports.LanguageDetector with whatlanggo's
// trigram profiles. Classification involves no sampling and no mutable
// state, so results are deterministic across runs by construction.
type WhatlangDetector struct{}

var _ ports.LanguageDetector = (*WhatlangDetector)(nil)

// New returns the shared detector instance.
func New() *WhatlangDetector {
	return &WhatlangDetector{}
}

// Detect returns the ISO 639-3 code of the dominant language, or
// ErrUnreliable when confidence is too low to claim one.
func (d *WhatlangDetector) Detect(text string) (string, error) {
	info := whatlanggo.Detect(text)
	if info.Lang < 0 || !info.IsReliable() {
		return "", ErrUnreliable
	}
	return whatlanggo.LangToString(info.Lang), nil
}

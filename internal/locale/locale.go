// Package locale holds the player-facing strings of the game in every
// supported language and picks the closest one for a requested tag.
package locale

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed lang/*.lang
var langFiles embed.FS

// Translation keys used outside this package.
const (
	KeyStart        = "status.start"
	KeyAddedLeft    = "status.added.left"
	KeyAddedRight   = "status.added.right"
	KeyRemovedLeft  = "status.removed.left"
	KeyRemovedRight = "status.removed.right"
	KeyNearBalance  = "status.near_balance"
	KeyLeftHeavy    = "status.left_heavy"
	KeyRightHeavy   = "status.right_heavy"
	KeyBalanced     = "status.balanced"
)

// Supported lists the available languages; the first is the fallback.
var Supported = []language.Tag{language.English, language.Chinese}

var matcher = language.NewMatcher(Supported)

// localeData represents a mapping of translation keys to their respective values for a specific language.
type localeData map[string]string

// locales is a map of registered locales keyed by language tags.
var locales = make(map[language.Tag]localeData)

func init() {
	for _, tag := range Supported {
		data, err := langFiles.ReadFile(fmt.Sprintf("lang/%s.lang", tag.String()))
		if err != nil {
			panic(fmt.Sprintf("locale: missing language file for %s: %v", tag, err))
		}
		parsed, err := parse(data)
		if err != nil {
			panic(fmt.Sprintf("locale: bad language file for %s: %v", tag, err))
		}
		locales[tag] = parsed
	}
}

// parse reads "key=value" lines, skipping blanks and # comments.
func parse(data []byte) (localeData, error) {
	out := make(localeData)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) < 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan locale data: %w", err)
	}
	return out, nil
}

// Match returns the supported language closest to the given BCP 47 string.
// Empty or unparsable input yields English.
func Match(lang string) language.Tag {
	if lang == "" {
		return Supported[0]
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// Translator renders keys in one language.
type Translator struct {
	tag  language.Tag
	data localeData
}

// For returns a translator for the closest supported language.
func For(tag language.Tag) Translator {
	_, idx, _ := matcher.Match(tag)
	best := Supported[idx]
	return Translator{tag: best, data: locales[best]}
}

// Tag returns the translator's language.
func (t Translator) Tag() language.Tag {
	return t.tag
}

// T translates a key and fills %1, %2, ... placeholders with args.
// Keys missing in the language fall back to English.
func (t Translator) T(key string, args ...any) string {
	data := t.data
	if data == nil {
		data = locales[Supported[0]]
	}

	translation, ok := data[key]
	if !ok {
		translation, ok = locales[Supported[0]][key]
	}
	if !ok {
		return fmt.Sprintf("missing translation for '%s'", key)
	}

	for i, arg := range args {
		placeholder := fmt.Sprintf("%%%d", i+1)
		translation = strings.ReplaceAll(translation, placeholder, fmt.Sprintf("%v", arg))
	}
	return translation
}

package perseus

import (
	"bytes"
	"encoding/xml"
	"maps"
	"regexp"
	"strconv"
	"strings"
)

// internalEntity matches a general entity declaration with a literal value.
// Parameter entities (%) and external entities (SYSTEM/PUBLIC) do not match.
var internalEntity = regexp.MustCompile(`<!ENTITY\s+([A-Za-z_:][\w.:-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

var charRef = regexp.MustCompile(`&#(x[0-9A-Fa-f]+|[0-9]+);`)

// DeclaredEntities returns the general entities declared in the internal
// subset of data's DOCTYPE. Tokens are read only up to the root element.
func DeclaredEntities(data []byte) map[string]string {
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = false

	for {
		tok, err := d.RawToken()
		if err != nil {
			return nil
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil
		case xml.Directive:
			if bytes.HasPrefix(bytes.TrimSpace(t), []byte("DOCTYPE")) {
				return parseEntities(t)
			}
		}
	}
}

func parseEntities(doctype []byte) map[string]string {
	matches := internalEntity.FindAllSubmatch(doctype, -1)
	if len(matches) == 0 {
		return nil
	}
	entities := make(map[string]string, len(matches))
	for _, m := range matches {
		name := string(m[1])
		if _, dup := entities[name]; dup {
			// First declaration binds.
			continue
		}
		value := m[2]
		if value == nil {
			value = m[3]
		}
		entities[name] = expandCharRefs(string(value))
	}
	return entities
}

// expandCharRefs replaces numeric character references in an entity value.
func expandCharRefs(s string) string {
	if !strings.Contains(s, "&#") {
		return s
	}
	return charRef.ReplaceAllStringFunc(s, func(ref string) string {
		body := ref[2 : len(ref)-1]
		var n uint64
		var err error
		if body[0] == 'x' {
			n, err = strconv.ParseUint(body[1:], 16, 32)
		} else {
			n, err = strconv.ParseUint(body, 10, 32)
		}
		if err != nil {
			return ref
		}
		return string(rune(n))
	})
}

// mergeEntities layers override on top of base.
func mergeEntities(base, override map[string]string) map[string]string {
	if len(base) == 0 {
		return override
	}
	merged := maps.Clone(base)
	maps.Copy(merged, override)
	return merged
}

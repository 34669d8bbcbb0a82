package affidavit

import (
	"strings"

	pdfform "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
	"github.com/sirupsen/logrus"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldCheckbox
)

type formField struct {
	name string
	kind fieldKind
}

// fieldIndex resolves logical labels against the template's declared field
// names. Form vendors do not keep names stable across revisions, so lookup
// runs in tiers: exact name, then first field containing the label as a
// case-insensitive substring, then first field containing every label word.
// First match wins; the ambiguity lives here in the data structure, not in
// the fill control flow, and every fallback-tier hit is logged so court
// document generation stays auditable.
type fieldIndex struct {
	fields []formField
	byName map[string]int
	logger *logrus.Logger
}

func newFieldIndex(declared []pdfform.Field, logger *logrus.Logger) *fieldIndex {
	idx := &fieldIndex{
		fields: make([]formField, 0, len(declared)),
		byName: make(map[string]int, len(declared)),
		logger: logger,
	}

	for _, f := range declared {
		var kind fieldKind
		switch f.Typ {
		case pdfform.FTText:
			kind = fieldText
		case pdfform.FTCheckBox:
			kind = fieldCheckbox
		default:
			continue
		}

		name := f.Name
		if name == "" {
			name = f.ID
		}
		if name == "" {
			continue
		}

		if _, dup := idx.byName[name]; !dup {
			idx.byName[name] = len(idx.fields)
		}
		idx.fields = append(idx.fields, formField{name: name, kind: kind})
	}

	return idx
}

// lookup resolves a label to a declared field, or reports a miss. Misses
// are expected across form revisions and never abort a fill.
func (idx *fieldIndex) lookup(label string) (formField, bool) {
	if i, ok := idx.byName[label]; ok {
		return idx.fields[i], true
	}

	needle := strings.ToLower(label)
	for _, f := range idx.fields {
		if strings.Contains(strings.ToLower(f.name), needle) {
			idx.logger.WithFields(logrus.Fields{
				"label": label,
				"field": f.name,
			}).Info("resolved form field via substring fallback")
			return f, true
		}
	}

	words := strings.Fields(needle)
	if len(words) > 1 {
	fields:
		for _, f := range idx.fields {
			haystack := strings.ToLower(f.name)
			for _, word := range words {
				if !strings.Contains(haystack, word) {
					continue fields
				}
			}
			idx.logger.WithFields(logrus.Fields{
				"label": label,
				"field": f.name,
			}).Info("resolved form field via word-match fallback")
			return f, true
		}
	}

	return formField{}, false
}

package affidavit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"affidavit/pkg/types"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
)

// Both known official templates prepend exactly three non-fillable
// instruction pages. This is a structural constant of the forms, not
// something computed.
const instructionPageCount = 3

// Wire shape of the pdfcpu form-fill payload.
type fillPayload struct {
	Forms []fillForm `json:"forms"`
}

type fillForm struct {
	TextFields []fillTextField `json:"textfield,omitempty"`
	CheckBoxes []fillCheckBox  `json:"checkbox,omitempty"`
}

type fillTextField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type fillCheckBox struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// renderOfficial drives the whole fill pipeline for one request: load the
// template, index its declared fields, resolve the catalog entries against
// them, fill, strip the instruction pages and lock the result.
func (e *Engine) renderOfficial(ctx context.Context, form types.FormKind, d *fillData) ([]byte, error) {
	tmpl, err := e.templates.Template(ctx, form)
	if err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()

	declared, err := api.FormFields(bytes.NewReader(tmpl), conf)
	if err != nil {
		return nil, fmt.Errorf("list %s template fields: %w", form, err)
	}

	idx := newFieldIndex(declared, e.logger)
	texts, checks := buildEntries(form, d)
	payload := e.resolveEntries(idx, texts, checks)

	filled := tmpl
	if len(payload.Forms[0].TextFields) > 0 || len(payload.Forms[0].CheckBoxes) > 0 {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal fill payload: %w", err)
		}

		var buf bytes.Buffer
		if err := api.FillForm(bytes.NewReader(tmpl), bytes.NewReader(data), &buf, conf); err != nil {
			return nil, fmt.Errorf("fill %s form: %w", form, err)
		}
		filled = buf.Bytes()
	}

	var stripped bytes.Buffer
	pages := []string{fmt.Sprintf("1-%d", instructionPageCount)}
	if err := api.RemovePages(bytes.NewReader(filled), &stripped, pages, conf); err != nil {
		return nil, fmt.Errorf("strip instruction pages: %w", err)
	}

	// Locking bakes the values against edits. Fidelity of content matters
	// more than uneditability, so a lock failure returns the unlocked
	// document instead of failing the request.
	var locked bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(stripped.Bytes()), &locked, nil, conf); err != nil {
		e.logger.WithError(err).WithField("form", form).Warn("failed to lock filled form, returning unlocked document")
		return stripped.Bytes(), nil
	}

	return locked.Bytes(), nil
}

// resolveEntries maps logical labels onto declared field names. Unresolved
// labels and kind mismatches are skipped: a field missing from a given
// form revision must never abort the whole document.
func (e *Engine) resolveEntries(idx *fieldIndex, texts []textEntry, checks []checkEntry) fillPayload {
	entry := fillForm{}
	used := make(map[string]bool)

	for _, t := range texts {
		f, ok := idx.lookup(t.label)
		if !ok {
			e.logger.WithField("label", t.label).Debug("no matching form field, skipping")
			continue
		}
		if f.kind != fieldText {
			e.logger.WithFields(logrus.Fields{"label": t.label, "field": f.name}).
				Debug("field is not a text field, skipping")
			continue
		}
		if used[f.name] {
			continue
		}
		used[f.name] = true
		entry.TextFields = append(entry.TextFields, fillTextField{Name: f.name, Value: t.value})
	}

	for _, c := range checks {
		f, ok := idx.lookup(c.label)
		if !ok {
			e.logger.WithField("label", c.label).Debug("no matching checkbox field, skipping")
			continue
		}
		if f.kind != fieldCheckbox {
			e.logger.WithFields(logrus.Fields{"label": c.label, "field": f.name}).
				Debug("field is not a checkbox, skipping")
			continue
		}
		if used[f.name] {
			continue
		}
		used[f.name] = true
		entry.CheckBoxes = append(entry.CheckBoxes, fillCheckBox{Name: f.name, Value: c.on})
	}

	return fillPayload{Forms: []fillForm{entry}}
}

package affidavit

import (
	"testing"

	pdfform "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/form"
)

func declaredFields() []pdfform.Field {
	return []pdfform.Field{
		{Name: "Case No", Typ: pdfform.FTText},
		{Name: "Full Legal Name", Typ: pdfform.FTText},
		{Name: "Total Present Monthly Net Income", Typ: pdfform.FTText},
		{Name: "Checkbox every week", Typ: pdfform.FTCheckBox},
		{ID: "f42", Typ: pdfform.FTText},
		{Name: "Division Assignment", Typ: pdfform.FTComboBox},
	}
}

func TestFieldIndexExactMatch(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	field, ok := idx.lookup("Case No")
	if !ok {
		t.Fatal("expected exact match for Case No")
	}
	if field.name != "Case No" || field.kind != fieldText {
		t.Errorf("got %+v", field)
	}
}

func TestFieldIndexSubstringMatch(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	field, ok := idx.lookup("every week")
	if !ok {
		t.Fatal("expected substring match for every week")
	}
	if field.name != "Checkbox every week" || field.kind != fieldCheckbox {
		t.Errorf("got %+v", field)
	}
}

func TestFieldIndexWordMatch(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	// Word order differs from the declared name, so only the word tier
	// can resolve this.
	field, ok := idx.lookup("present net monthly income")
	if !ok {
		t.Fatal("expected word match for present net monthly income")
	}
	if field.name != "Total Present Monthly Net Income" {
		t.Errorf("field = %q", field.name)
	}
}

func TestFieldIndexMiss(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	if _, ok := idx.lookup("Nonexistent Field"); ok {
		t.Error("expected miss for unknown label")
	}
}

func TestFieldIndexNameFallsBackToID(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	field, ok := idx.lookup("f42")
	if !ok {
		t.Fatal("expected match on field id")
	}
	if field.name != "f42" {
		t.Errorf("field = %q", field.name)
	}
}

func TestFieldIndexSkipsUnsupportedTypes(t *testing.T) {
	idx := newFieldIndex(declaredFields(), testLogger())

	if _, ok := idx.lookup("Division Assignment"); ok {
		t.Error("combo boxes should not be indexed")
	}
}

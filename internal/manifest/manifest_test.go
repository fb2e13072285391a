package manifest

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func load(t *testing.T, text string) *Manifest {
	t.Helper()
	m, err := LoadString(text, "")
	if err != nil {
		t.Fatalf("LoadString error: %v", err)
	}
	return m
}

func loadErr(t *testing.T, text string) *Error {
	t.Helper()
	_, err := LoadString(text, "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var me *Error
	if !errors.As(err, &me) {
		t.Fatalf("error type = %T, want *manifest.Error", err)
	}
	return me
}

func TestLoadString_DefaultsToEmptyLists(t *testing.T) {
	m := load(t, `{"meta_dds": {}}`)
	if len(m.Depends) != 0 || len(m.TestDepends) != 0 ||
		len(m.MetaDepends) != 0 || len(m.MetaTestDepends) != 0 {
		t.Errorf("expected all dependency lists empty, got %+v", m)
	}
}

func TestLoadString_MissingMetaDDS(t *testing.T) {
	me := loadErr(t, `{}`)
	if me.Kind != MissingRequiredKey {
		t.Errorf("Kind = %v, want %v", me.Kind, MissingRequiredKey)
	}
	if !strings.Contains(me.Error(), "meta_dds") {
		t.Errorf("error %q does not mention meta_dds", me)
	}
}

func TestLoadString_MissingMetaDDSWinsOverOtherKeys(t *testing.T) {
	// meta_dds absence is fatal regardless of whatever else is present.
	me := loadErr(t, `{"depends": ["a@1.0.0"]}`)
	if me.Kind != MissingRequiredKey {
		t.Errorf("Kind = %v, want %v", me.Kind, MissingRequiredKey)
	}
}

func TestLoadString_StringSpecifier(t *testing.T) {
	m := load(t, `{"depends": ["a@1.0.0"], "meta_dds": {}}`)
	if len(m.Depends) != 1 {
		t.Fatalf("len(Depends) = %d, want 1", len(m.Depends))
	}
	if m.Depends[0].Name != "a" {
		t.Errorf("Name = %q, want %q", m.Depends[0].Name, "a")
	}
	if m.Depends[0].Range.String() != "1.0.0" {
		t.Errorf("Range = %q, want %q", m.Depends[0].Range.String(), "1.0.0")
	}
	if len(m.MetaDepends) != 0 || len(m.MetaTestDepends) != 0 {
		t.Error("expected empty meta dependency lists")
	}
}

func TestLoadString_SpellingEquivalence(t *testing.T) {
	stringForm := load(t, `{"depends": ["b@2.0.0"], "meta_dds": {}}`)
	objectForm := load(t, `{"depends": [{"b": "2.0.0"}], "meta_dds": {}}`)
	if !reflect.DeepEqual(stringForm.Depends, objectForm.Depends) {
		t.Errorf("string form %+v != object form %+v", stringForm.Depends, objectForm.Depends)
	}
}

func TestLoadString_MetaObjectDependency(t *testing.T) {
	m := load(t, `{"meta_dds": {"depends": [{"b": "2.0.0"}]}}`)
	if len(m.Depends) != 0 {
		t.Errorf("len(Depends) = %d, want 0", len(m.Depends))
	}
	if len(m.MetaDepends) != 1 {
		t.Fatalf("len(MetaDepends) = %d, want 1", len(m.MetaDepends))
	}
	md := m.MetaDepends[0]
	if md.Name != "b" {
		t.Errorf("Name = %q, want %q", md.Name, "b")
	}
	if len(md.Configuration) != 0 {
		t.Errorf("Configuration = %+v, want empty", md.Configuration)
	}
}

func TestLoadString_MetaConfigurationPairs(t *testing.T) {
	m := load(t, `{"meta_dds": {"depends": [{
		"llvm": "^7.1.0",
		"LLVM_ENABLE_ASSERTIONS": "ON",
		"LLVM_TARGETS_TO_BUILD": "X86",
		"LLVM_ENABLE_ASSERTIONS": "OFF"
	}]}}`)

	if len(m.MetaDepends) != 1 {
		t.Fatalf("len(MetaDepends) = %d, want 1", len(m.MetaDepends))
	}
	md := m.MetaDepends[0]
	if md.Name != "llvm" || md.Range.String() != "^7.1.0" {
		t.Errorf("dependency = %s, want llvm^7.1.0", md.Dependency)
	}

	want := []ConfigPair{
		{Key: "LLVM_ENABLE_ASSERTIONS", Value: "ON"},
		{Key: "LLVM_TARGETS_TO_BUILD", Value: "X86"},
		{Key: "LLVM_ENABLE_ASSERTIONS", Value: "OFF"},
	}
	if !reflect.DeepEqual(md.Configuration, want) {
		t.Errorf("Configuration = %+v, want %+v", md.Configuration, want)
	}
}

func TestLoadString_MetaStringSpecifier(t *testing.T) {
	m := load(t, `{"meta_dds": {"depends": ["freetype@2.11.0"], "test_depends": ["catch2^2.13.0"]}}`)
	if len(m.MetaDepends) != 1 || m.MetaDepends[0].Name != "freetype" {
		t.Fatalf("MetaDepends = %+v, want freetype", m.MetaDepends)
	}
	if len(m.MetaTestDepends) != 1 || m.MetaTestDepends[0].Name != "catch2" {
		t.Fatalf("MetaTestDepends = %+v, want catch2", m.MetaTestDepends)
	}
}

func TestLoadString_InvalidVersionRange(t *testing.T) {
	tests := []struct {
		name string
		text string
		path string
	}{
		{"object form", `{"depends": [{"foo": "not-a-version"}], "meta_dds": {}}`, "depends[0]"},
		{"string form", `{"depends": ["foo@not-a-version"], "meta_dds": {}}`, "depends[0]"},
		{"nested", `{"meta_dds": {"depends": ["ok@1.0.0", {"foo": "not-a-version"}]}}`, "meta_dds.depends[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			me := loadErr(t, tt.text)
			if me.Kind != InvalidVersionRange {
				t.Errorf("Kind = %v, want %v", me.Kind, InvalidVersionRange)
			}
			if me.KeyPath != tt.path {
				t.Errorf("KeyPath = %q, want %q", me.KeyPath, tt.path)
			}
			if !strings.Contains(me.Error(), `"not-a-version"`) {
				t.Errorf("error %q does not name the range string", me)
			}
			if !strings.Contains(me.Error(), `"foo"`) {
				t.Errorf("error %q does not name the dependency", me)
			}
		})
	}
}

func TestLoadString_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		mention string
	}{
		{"root not object", `["a@1.0.0"]`, "Root of package manifest should be a JSON object"},
		{"depends not array", `{"depends": "not-an-array", "meta_dds": {}}`, "`depends' should be an array"},
		{"test_depends not array", `{"test_depends": {}, "meta_dds": {}}`, "`test_depends' should be an array"},
		{"meta_dds not object", `{"meta_dds": []}`, "`meta_dds' should be an object"},
		{"meta depends not array", `{"meta_dds": {"depends": 7}}`, "`meta_dds.depends' should be an array"},
		{"number element", `{"depends": [3], "meta_dds": {}}`, "array of strings or objects"},
		{"bool element", `{"meta_dds": {"depends": [true]}}`, "array of strings or objects"},
		{"array element", `{"depends": [["a@1.0.0"]], "meta_dds": {}}`, "array of strings or objects"},
		{"multi-entry object", `{"depends": [{"a": "1.0.0", "b": "2.0.0"}], "meta_dds": {}}`, "single"},
		{"non-string object value", `{"depends": [{"a": 1}], "meta_dds": {}}`, "Dependency object values should be strings"},
		{"non-string config value", `{"meta_dds": {"depends": [{"a": "1.0.0", "FLAG": 1}]}}`, "Dependency object values should be strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			me := loadErr(t, tt.text)
			if me.Kind != SchemaViolation {
				t.Errorf("Kind = %v, want %v", me.Kind, SchemaViolation)
			}
			if !strings.Contains(me.Error(), tt.mention) {
				t.Errorf("error %q does not mention %q", me, tt.mention)
			}
		})
	}
}

func TestLoadString_NestedKeyPath(t *testing.T) {
	me := loadErr(t, `{"meta_dds": {"depends": [true]}}`)
	if me.KeyPath != "meta_dds.depends[0]" {
		t.Errorf("KeyPath = %q, want %q", me.KeyPath, "meta_dds.depends[0]")
	}
}

func TestLoadString_InvalidSyntax(t *testing.T) {
	_, err := LoadString("{", "test.json5")
	var me *Error
	if !errors.As(err, &me) {
		t.Fatalf("error type = %T, want *manifest.Error", err)
	}
	if me.Kind != InvalidSyntax {
		t.Errorf("Kind = %v, want %v", me.Kind, InvalidSyntax)
	}
	if !strings.HasPrefix(me.Error(), "test.json5: ") {
		t.Errorf("error %q does not lead with the source path", me)
	}
}

func TestLoadString_RelaxedSyntax(t *testing.T) {
	m := load(t, `{
		// runtime dependencies
		"depends": [
			"fmt^7.0.3",
			{"spdlog": "~1.8.0"}, // object spelling
		],
		"meta_dds": {},
	}`)
	if len(m.Depends) != 2 {
		t.Fatalf("len(Depends) = %d, want 2", len(m.Depends))
	}
	if m.Depends[1].Name != "spdlog" {
		t.Errorf("Depends[1].Name = %q, want %q", m.Depends[1].Name, "spdlog")
	}
}

func TestLoadString_Idempotent(t *testing.T) {
	text := `{"depends": ["a@1.0.0"], "meta_dds": {"depends": [{"b": "2.0.0", "FLAG": "ON"}]}}`
	first := load(t, text)
	second := load(t, text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("loads differ:\n first = %+v\nsecond = %+v", first, second)
	}
}

func TestLoadString_FirstFailureWins(t *testing.T) {
	// Both elements are bad; the error reports the first.
	me := loadErr(t, `{"depends": [3, "also@bad"], "meta_dds": {}}`)
	if me.KeyPath != "depends[0]" {
		t.Errorf("KeyPath = %q, want %q", me.KeyPath, "depends[0]")
	}
}

func TestLoad_EmptyNameInObjectForm(t *testing.T) {
	me := loadErr(t, `{"depends": [{"": "1.0.0"}], "meta_dds": {}}`)
	if me.Kind != InvalidDependencySpecifier {
		t.Errorf("Kind = %v, want %v", me.Kind, InvalidDependencySpecifier)
	}
}

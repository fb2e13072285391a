package manifest

import (
	"testing"

	"github.com/Quincunx271/meta-dds/internal/json5"
)

func TestStripMeta(t *testing.T) {
	n, err := json5.Parse([]byte(`{
		"name": "app",
		"meta_dds": {"depends": []},
		"version": "1.0.0",
		"meta_dds": {}
	}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	stripped := StripMeta(n)
	out, err := stripped.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	want := `{"name":"app","version":"1.0.0"}`
	if string(out) != want {
		t.Errorf("stripped = %s, want %s", out, want)
	}
}

func TestStripMeta_NonObjectUnchanged(t *testing.T) {
	n := json5.NewString("x")
	if got := StripMeta(n); got.AsString() != "x" {
		t.Errorf("StripMeta changed a non-object node: %v", got)
	}
}

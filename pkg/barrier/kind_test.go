package barrier

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/barrierkit/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"0", KindNone, false},
		{"5", KindIslands, false},
		{"islands", KindIslands, false},
		{" Spots ", KindSpots, false},
		{"random-vertical-bar", KindRandomVerticalBar, false},

		{"7", 0, true},
		{"-1", 0, true},
		{"moat", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidKind) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidKind)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
		if k.Description() == "" {
			t.Errorf("%s has no description", k)
		}
	}
	if Kind(9).String() != "kind(9)" {
		t.Errorf("unknown kind String() = %q", Kind(9).String())
	}
}

func TestKindJSON(t *testing.T) {
	var v struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal([]byte(`{"kind":"horizontal-bar"}`), &v); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if v.Kind != KindHorizontalBar {
		t.Errorf("Kind = %v, want %v", v.Kind, KindHorizontalBar)
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"kind":"horizontal-bar"}` {
		t.Errorf("Marshal = %s", data)
	}
	if _, err := json.Marshal(struct{ K Kind }{Kind(12)}); err == nil {
		t.Error("marshaling an unknown kind should fail")
	}
}

func TestKindClassification(t *testing.T) {
	randomized := map[Kind]bool{KindRandomVerticalBar: true, KindIslands: true}
	clustered := map[Kind]bool{KindRandomVerticalBar: true, KindIslands: true, KindSpots: true}
	for _, k := range Kinds() {
		if k.Randomized() != randomized[k] {
			t.Errorf("%s.Randomized() = %v", k, k.Randomized())
		}
		if k.Clustered() != clustered[k] {
			t.Errorf("%s.Clustered() = %v", k, k.Clustered())
		}
	}
}

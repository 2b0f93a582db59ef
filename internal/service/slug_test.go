package service

import "testing"

func TestSlugify(t *testing.T) {
	tests := map[string]struct {
		input  string
		expect string
	}{
		"plain name":          {input: "Svets AB", expect: "svets-ab"},
		"swedish characters":  {input: "Svetsmästarna i Växjö", expect: "svetsmastarna-i-vaxjo"},
		"ampersand":           {input: "Bygg & Smide", expect: "bygg-och-smide"},
		"repeated separators": {input: "Maskin --  Service", expect: "maskin-service"},
		"leading and trailing junk": {
			input:  "  ***Norrlands Industri***  ",
			expect: "norrlands-industri",
		},
		"digits kept": {input: "Verkstad 24", expect: "verkstad-24"},
		"only junk":   {input: "***", expect: ""},
		"empty":       {input: "", expect: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

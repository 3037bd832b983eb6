package articulation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Articulated
	}{
		{
			name: "marker with mixed bullets",
			raw:  "Analysis here.\n🏛️ Timeline Expansion Seeds\n- Idea one\n* Idea two",
			want: Articulated{
				Main:      []string{"Analysis here."},
				Expansion: []string{"Idea one", "Idea two"},
			},
		},
		{
			name: "no marker keeps blank paragraphs",
			raw:  "First.\n\nSecond.",
			want: Articulated{Main: []string{"First.", "", "Second."}},
		},
		{
			name: "unicode bullet and blank seed line",
			raw:  "Intro\n\n🏛️ Timeline Expansion Seeds\n\n• What of the church?\n\n• And the guilds?\n",
			want: Articulated{
				Main:      []string{"Intro"},
				Expansion: []string{"What of the church?", "", "And the guilds?"},
			},
		},
		{
			name: "marker at start leaves no main",
			raw:  "🏛️ Timeline Expansion Seeds\n- only seeds",
			want: Articulated{Expansion: []string{"only seeds"}},
		},
		{
			name: "marker with nothing after it",
			raw:  "Body\n🏛️ Timeline Expansion Seeds   \n",
			want: Articulated{Main: []string{"Body"}, Expansion: []string{""}},
		},
		{
			name: "second marker is plain seed text",
			raw:  "A\n🏛️ Timeline Expansion Seeds\n- one\n🏛️ Timeline Expansion Seeds\n- two",
			want: Articulated{
				Main:      []string{"A"},
				Expansion: []string{"one", "🏛️ Timeline Expansion Seeds", "two"},
			},
		},
		{
			name: "bullet without space and indented bullet",
			raw:  "x\n🏛️ Timeline Expansion Seeds\n-tight\n  - indented\nplain",
			want: Articulated{
				Main:      []string{"x"},
				Expansion: []string{"tight", "  - indented", "plain"},
			},
		},
		{
			name: "only one bullet stripped",
			raw:  "x\n🏛️ Timeline Expansion Seeds\n- - nested",
			want: Articulated{
				Main:      []string{"x"},
				Expansion: []string{"- nested"},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: Articulated{Main: []string{""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat_RoundTripWithoutMarker(t *testing.T) {
	inputs := []string{
		"single line",
		"line one\nline two",
		"\n\nleading blanks",
		"trailing newline\n",
		"- a bullet that stays\n* another",
		"Timeline Expansion Seeds without the icon",
	}
	for _, raw := range inputs {
		got := Format(raw)
		if got.HasExpansion() {
			t.Fatalf("Format(%q) reported an expansion section", raw)
		}
		if joined := strings.Join(got.Main, "\n"); joined != raw {
			t.Errorf("round trip mismatch: got %q, want %q", joined, raw)
		}
	}
}

func TestFormat_Deterministic(t *testing.T) {
	raw := "Rome endures.\n🏛️ Timeline Expansion Seeds\n- Latin science?"
	first := Format(raw)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Format(raw)); diff != "" {
			t.Fatalf("Format is not stable (-first +again):\n%s", diff)
		}
	}
}

func TestArticulated_Paragraphs(t *testing.T) {
	got := Format("Main point.\n🏛️ Timeline Expansion Seeds\n- Seed A\n\n- Seed B").Paragraphs()
	want := []string{"Main point.", "", ExpansionTitle, "• Seed A", "", "• Seed B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paragraphs() mismatch (-want +got):\n%s", diff)
	}

	plain := Format("just text").Paragraphs()
	if diff := cmp.Diff([]string{"just text"}, plain); diff != "" {
		t.Errorf("Paragraphs() without seeds mismatch (-want +got):\n%s", diff)
	}
}

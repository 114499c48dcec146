package storage

import (
	"reflect"
	"testing"
)

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantOK bool
		want   PromptRecord
	}{
		{
			name:   "five fields",
			line:   "1. Confident Stand | poses,emotions | ★ | prompt_1.png | standing pose",
			wantOK: true,
			want: PromptRecord{
				Index:      1,
				Title:      "Confident Stand",
				Categories: []string{"poses", "emotions"},
				Favorite:   true,
				Image:      "prompt_1.png",
				Prompt:     "standing pose",
			},
		},
		{
			name:   "four fields without image",
			line:   "2. Gentle Kneel | poses |  | kneeling pose",
			wantOK: true,
			want: PromptRecord{
				Index:      2,
				Title:      "Gentle Kneel",
				Categories: []string{"poses"},
				Prompt:     "kneeling pose",
			},
		},
		{
			name:   "empty image and categories",
			line:   "3. Plain |  |  |  | text",
			wantOK: true,
			want: PromptRecord{
				Index:      3,
				Title:      "Plain",
				Categories: []string{},
				Prompt:     "text",
			},
		},
		{
			name:   "surrounding whitespace and empty category tokens",
			line:   "   4. Spaced | a, ,b,, |  | x.png | body   ",
			wantOK: true,
			want: PromptRecord{
				Index:      4,
				Title:      "Spaced",
				Categories: []string{"a", "b"},
				Image:      "x.png",
				Prompt:     "body",
			},
		},
		{
			name:   "title containing index separator",
			line:   "5. Mr. Smith | a |  |  | body",
			wantOK: true,
			want: PromptRecord{
				Index:      5,
				Title:      "Mr. Smith",
				Categories: []string{"a"},
				Prompt:     "body",
			},
		},
		{
			name:   "flag other than star is not favorite",
			line:   "6. T | a | * |  | body",
			wantOK: true,
			want: PromptRecord{
				Index:      6,
				Title:      "T",
				Categories: []string{"a"},
				Prompt:     "body",
			},
		},
		{
			name:   "more than five fields drops the surplus",
			line:   "7. T | a |  | first | second | third",
			wantOK: true,
			want: PromptRecord{
				Index:      7,
				Title:      "T",
				Categories: []string{"a"},
				Prompt:     "first",
			},
		},
		{name: "empty line", line: "   ", wantOK: false},
		{name: "no delimiter", line: "just some text", wantOK: false},
		{name: "too few fields", line: "1. T | a | ★", wantOK: false},
		{name: "missing index separator", line: "1.T | a | ★ |  | body", wantOK: false},
		{name: "non numeric index", line: "one. T | a | ★ |  | body", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("DecodeLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeLine() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEncodeLine(t *testing.T) {
	tests := []struct {
		name   string
		record PromptRecord
		want   string
	}{
		{
			name: "favorite with image",
			record: PromptRecord{
				Index:      1,
				Title:      "Confident Stand",
				Categories: []string{"poses", "emotions"},
				Favorite:   true,
				Image:      "prompt_1.png",
				Prompt:     "standing pose",
			},
			want: "1. Confident Stand | poses,emotions | ★ | prompt_1.png | standing pose",
		},
		{
			name: "no categories no image",
			record: PromptRecord{
				Index:  2,
				Title:  "Bare",
				Prompt: "text",
			},
			want: "2. Bare |  |  |  | text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeLine(tt.record); got != tt.want {
				t.Errorf("EncodeLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := append(DefaultPrompts(),
		PromptRecord{Index: 4, Title: "With Image", Categories: []string{"x"}, Image: "prompt_4.webp", Prompt: "a, b, c"},
		PromptRecord{Index: 5, Title: "Unicode ✨", Categories: []string{}, Favorite: true, Prompt: "日本語 prompt"},
	)

	for _, want := range records {
		t.Run(want.Title, func(t *testing.T) {
			got, ok := DecodeLine(EncodeLine(want))
			if !ok {
				t.Fatalf("DecodeLine(EncodeLine()) not ok for %+v", want)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip = %+v, want %+v", got, want)
			}
		})
	}
}

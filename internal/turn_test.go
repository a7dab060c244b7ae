package internal

import (
	"testing"
)

func TestNewUserTurn(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantOK  bool
	}{
		{
			name:   "plain text",
			input:  "jobs in Florida?",
			want:   "jobs in Florida?",
			wantOK: true,
		},
		{
			name:   "surrounding whitespace trimmed",
			input:  "  hello \n",
			want:   "hello",
			wantOK: true,
		},
		{
			name:   "empty string rejected",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only rejected",
			input:  " \n\t  ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, ok := NewUserTurn(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("NewUserTurn(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if turn.Role != RoleUser {
				t.Errorf("NewUserTurn() role = %q, want %q", turn.Role, RoleUser)
			}
			if turn.Content != tt.want {
				t.Errorf("NewUserTurn() content = %q, want %q", turn.Content, tt.want)
			}
		})
	}
}

func TestEncodeDecodeTranscript_RoundTrip(t *testing.T) {
	turns := CreateTestTranscript(7)

	data, err := EncodeTranscript(turns)
	if err != nil {
		t.Fatalf("EncodeTranscript() error = %v", err)
	}

	got, err := DecodeTranscript(data)
	if err != nil {
		t.Fatalf("DecodeTranscript() error = %v", err)
	}

	if len(got) != len(turns) {
		t.Fatalf("round trip returned %d turns, want %d", len(got), len(turns))
	}
	for i := range turns {
		if got[i] != turns[i] {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], turns[i])
		}
	}
}

func TestEncodeTranscript_NilIsEmptyArray(t *testing.T) {
	data, err := EncodeTranscript(nil)
	if err != nil {
		t.Fatalf("EncodeTranscript(nil) error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("EncodeTranscript(nil) = %s, want []", data)
	}
}

func TestDecodeTranscript(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{
			name:  "valid transcript",
			input: `[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]`,
			want:  2,
		},
		{
			name:  "unknown roles skipped",
			input: `[{"role":"system","content":"x"},{"role":"user","content":"hi"}]`,
			want:  1,
		},
		{
			name:  "empty content skipped",
			input: `[{"role":"user","content":""},{"role":"assistant","content":"hello"}]`,
			want:  1,
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  0,
		},
		{
			name:    "corrupt payload",
			input:   `{"not":"an array"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTranscript([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeTranscript() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != tt.want {
				t.Errorf("DecodeTranscript() returned %d turns, want %d", len(got), tt.want)
			}
		})
	}
}

package formula

import "testing"

func TestParseCall(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "bare identifier",
			input: "crate",
			want:  []string{"crate"},
		},
		{
			name:  "identifier with underscore and dash",
			input: "auto_door-2",
			want:  []string{"auto_door-2"},
		},
		{
			name:  "empty argument list",
			input: "door()",
			want:  []string{"door"},
		},
		{
			name:  "single argument",
			input: "door(3)",
			want:  []string{"door", "3"},
		},
		{
			name:  "multiple arguments",
			input: "teleporter(4,dest-7)",
			want:  []string{"teleporter", "4", "dest-7"},
		},
		{
			name:  "quoted argument keeps commas and spaces",
			input: `sign("hello, world")`,
			want:  []string{"sign", "hello, world"},
		},
		{
			name:  "mixed quoted and bare arguments",
			input: `spawner(crate,"2",8)`,
			want:  []string{"spawner", "crate", "2", "8"},
		},
		{
			name:    "missing closing paren",
			input:   "door(3",
			wantErr: true,
		},
		{
			name:    "missing comma between arguments",
			input:   "door(3 4)",
			wantErr: true,
		},
		{
			name:    "unterminated quoted string",
			input:   `sign("hi`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCall(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCall(%q) = %v, expected an error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCall(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseCall(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseCall(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	typeName, args, err := Parse("door(3)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if typeName != "door" {
		t.Errorf("type name = %q, want %q", typeName, "door")
	}
	if len(args) != 1 || args[0] != "3" {
		t.Errorf("args = %v, want [3]", args)
	}

	typeName, args, err = Parse("crate")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if typeName != "crate" {
		t.Errorf("type name = %q, want %q", typeName, "crate")
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestParseFailsOnMalformedFormula(t *testing.T) {
	if _, _, err := Parse("door(3"); err == nil {
		t.Fatal("expected an error for an unterminated argument list")
	}
}

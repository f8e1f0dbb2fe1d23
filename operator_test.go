package predql

import "testing"

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected Operator
	}{
		{"eq", Eq},
		{"=", Eq},
		{"GT", Gt},
		{">", Gt},
		{"ge", Ge},
		{">=", Ge},
		{"Lt", Lt},
		{"<", Lt},
		{"le", Le},
		{"<=", Le},
		{"like", Like},
		{"LIKE", Like},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperator(tt.input)
			if err != nil {
				t.Fatalf("ParseOperator(%q) failed: %v", tt.input, err)
			}
			if op != tt.expected {
				t.Errorf("ParseOperator(%q) = %s, want %s", tt.input, op, tt.expected)
			}
		})
	}

	for _, bad := range []string{"", "!=", "<>", "in", "between"} {
		if _, err := ParseOperator(bad); err == nil {
			t.Errorf("ParseOperator(%q) should fail", bad)
		}
	}
}

func TestOperatorValid(t *testing.T) {
	for _, op := range []Operator{Eq, Gt, Ge, Lt, Le, Like} {
		if !op.Valid() {
			t.Errorf("%s should be valid", op)
		}
	}
	if Operator("ne").Valid() {
		t.Error("unknown operator reported valid")
	}
}

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		input    string
		expected KeyType
	}{
		{"", NotAKey},
		{"none", NotAKey},
		{"assigned", Assigned},
		{"identity", Identity},
		{"Identity", Identity},
		{"guid", Guid},
		{"uuid", Guid},
	}

	for _, tt := range tests {
		kt, err := ParseKeyType(tt.input)
		if err != nil {
			t.Errorf("ParseKeyType(%q) failed: %v", tt.input, err)
			continue
		}
		if kt != tt.expected {
			t.Errorf("ParseKeyType(%q) = %s, want %s", tt.input, kt, tt.expected)
		}
	}

	if _, err := ParseKeyType("serial"); err == nil {
		t.Error("ParseKeyType(serial) should fail")
	}
}

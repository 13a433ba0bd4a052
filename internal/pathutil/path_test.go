package pathutil

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b/../c", "a/c"},
		{"./a/./b", "a/b"},
		{"a//b", "a/b"},
		{"/a/b/../../c", "/c"},
		{"../a/b", "../a/b"},
		{"", ""},
		{".", "."},
	}
	for _, tt := range tests {
		if got := Simplify(tt.in); got != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromNative(t *testing.T) {
	if got := FromNative(`src\lib\check.cpp`); got != "src/lib/check.cpp" {
		t.Errorf("FromNative = %q", got)
	}
}

func TestToNative(t *testing.T) {
	if got := ToNative("src/lib/check.cpp", true); got != `src\lib\check.cpp` {
		t.Errorf("ToNative(windows) = %q", got)
	}
	if got := ToNative("src/lib/check.cpp", false); got != "src/lib/check.cpp" {
		t.Errorf("ToNative(posix) = %q", got)
	}
}

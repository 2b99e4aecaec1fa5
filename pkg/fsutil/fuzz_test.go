package fsutil_test

import (
	"testing"
	"unicode/utf8"

	"github.com/yaklabco/repolint/pkg/fsutil"
)

func FuzzDecodeText(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("# Title\n"))
	f.Add([]byte("\xEF\xBB\xBF# Title\r\n"))
	f.Add([]byte("\xff\xfe"))
	f.Add([]byte("// @module: core\n"))

	f.Fuzz(func(t *testing.T, raw []byte) {
		text, err := fsutil.DecodeText("fuzz", raw)
		if !utf8.Valid(raw) {
			if err == nil {
				t.Fatalf("expected error for invalid input %q", raw)
			}
			return
		}
		if err != nil {
			t.Fatalf("DecodeText(%q) error = %v", raw, err)
		}
		want := string(raw)
		if text != want {
			t.Fatalf("DecodeText(%q) = %q, want %q", raw, text, want)
		}
	})
}

package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()

	for _, name := range []FontName{GoTitle, GoSmall, GoMono} {
		if name.Get() == nil {
			t.Errorf("%s: face is nil", name)
		}
	}
	if len(fonts) != 3 {
		t.Errorf("registered %d faces, want 3", len(fonts))
	}
}

func TestGet_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unregistered font")
		}
	}()
	FontName("missing").Get()
}

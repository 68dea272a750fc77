package ui

import "testing"

func TestThemeByName(t *testing.T) {
	t.Parallel()
	if th := ThemeByName("light"); th.IsDark {
		t.Error("light theme reported dark")
	}
	if th := ThemeByName("dark"); !th.IsDark {
		t.Error("dark theme reported light")
	}
}

func TestDetectTheme_ColorFGBG(t *testing.T) {
	t.Setenv("COLORFGBG", "0;15")
	if th := DetectTheme(); th.IsDark {
		t.Error("background 15 should detect light")
	}

	t.Setenv("COLORFGBG", "15;0")
	if th := DetectTheme(); !th.IsDark {
		t.Error("background 0 should detect dark")
	}

	t.Setenv("COLORFGBG", "garbage")
	_ = DetectTheme()
}

func TestRenderDivider(t *testing.T) {
	t.Parallel()
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(0); got != "" {
		t.Errorf("zero width divider = %q", got)
	}
	if got := s.RenderDivider(-3); got != "" {
		t.Errorf("negative width divider = %q", got)
	}
	if s.RenderDivider(4) == "" {
		t.Error("positive width divider empty")
	}
}

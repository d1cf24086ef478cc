package domain

import (
	"errors"
	"strings"
)

var ErrInvalidTheme = errors.New("invalid theme (must be light or dark)")

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Preferences struct {
	Theme     string `json:"theme"`
	FocusMode bool   `json:"focusMode"`
}

func DefaultPreferences() *Preferences {
	return &Preferences{Theme: ThemeLight}
}

func ParseTheme(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", ErrInvalidTheme
}

func (p *Preferences) ToggleTheme() string {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
	} else {
		p.Theme = ThemeDark
	}
	return p.Theme
}

func (p *Preferences) ToggleFocusMode() bool {
	p.FocusMode = !p.FocusMode
	return p.FocusMode
}

package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Background       string `toml:"background"`
	CursorBackground string `toml:"cursor_background"`
	MirrorBackground string `toml:"mirror_background"`
	OffsetColor      string `toml:"offset_color"`
	HeaderColor      string `toml:"header_color"`
	StatusBackground string `toml:"status_background"`
	StatusHighlight  string `toml:"status_highlight"`
	EndianColor      string `toml:"endian_color"`
	HelpKeyColor     string `toml:"help_key_color"`
	PromptColor      string `toml:"prompt_color"`
}

type Config struct {
	Theme Theme `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			Background:       "#000000",
			CursorBackground: "#0000FF",
			MirrorBackground: "#000080",
			OffsetColor:      "#B0FC38",
			HeaderColor:      "#888888",
			StatusBackground: "#0000FF",
			StatusHighlight:  "#FF00FF",
			EndianColor:      "#FFAA00",
			HelpKeyColor:     "#FF0000",
			PromptColor:      "#FFFF00",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hextex.toml"
	}
	return filepath.Join(home, ".config", "hextex", "hextex.toml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

type Styles struct {
	Normal          lipgloss.Style
	Cursor          lipgloss.Style
	Mirror          lipgloss.Style
	Offset          lipgloss.Style
	OffsetActive    lipgloss.Style
	Header          lipgloss.Style
	Status          lipgloss.Style
	StatusHighlight lipgloss.Style
	EndianBadge     lipgloss.Style
	HelpKey         lipgloss.Style
	HelpDesc        lipgloss.Style
	Prompt          lipgloss.Style
	Notice          lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Normal: lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.CursorBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Mirror: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.MirrorBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		Offset: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OffsetColor)).
			Italic(true),
		OffsetActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.OffsetColor)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HeaderColor)),
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.StatusBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		StatusHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.StatusBackground)).
			Foreground(lipgloss.Color(theme.StatusHighlight)).
			Bold(true),
		EndianBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.EndianColor)).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.HelpKeyColor)).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.PromptColor)),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.EndianColor)),
	}
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// parseColor converts a CSS color value (hex, rgb()/rgba() or a named
// color) into a terminal color.
func parseColor(value string) (lipgloss.Color, bool) {
	value = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(value), ";"))
	switch {
	case value == "":
		return "", false
	case strings.HasPrefix(value, "#"):
		if len(value) != 4 && len(value) != 7 {
			return "", false
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return "", false
		}
		return lipgloss.Color(c.Hex()), true
	case strings.HasPrefix(value, "rgb"):
		return parseRGB(value)
	}
	if named, ok := colornames.Map[value]; ok {
		c, _ := colorful.MakeColor(named)
		return lipgloss.Color(c.Hex()), true
	}
	return "", false
}

func parseRGB(value string) (lipgloss.Color, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return "", false
	}
	if fn := value[:open]; fn != "rgb" && fn != "rgba" {
		return "", false
	}
	parts := strings.Split(value[open+1:len(value)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return "", false
	}
	var channels [3]float64
	for i := range channels {
		part := strings.TrimSpace(parts[i])
		scale := 255.0
		if strings.HasSuffix(part, "%") {
			part, scale = strings.TrimSuffix(part, "%"), 100
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil || n < 0 || n > scale {
			return "", false
		}
		channels[i] = n / scale
	}
	c := colorful.Color{R: channels[0], G: channels[1], B: channels[2]}
	return lipgloss.Color(c.Clamped().Hex()), true
}

// themeColor converts the host theme's text color. Besides CSS colors it
// takes an ANSI palette index, which lipgloss renders as is.
func themeColor(value string) (lipgloss.Color, bool) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return lipgloss.Color(value), n >= 0 && n <= 255
	}
	return parseColor(value)
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/charmbracelet/lipgloss"
)

// Stylesheet is the subset of a host stylesheet that maps onto terminal
// styling. Only simple selectors are kept: an optional node kind followed by
// classes, such as ".caption", "label" or ".image-box.selected". For
// descendant selectors the last compound is matched.
type Stylesheet struct {
	rules []sheetRule
}

type sheetRule struct {
	kind    string
	classes []string
	decls   []*css.Declaration
}

// ParseStylesheet parses css. Rules the terminal cannot express are dropped.
func ParseStylesheet(text string) (*Stylesheet, error) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet: %w", err)
	}

	sheet := &Stylesheet{}
	for _, rule := range parsed.Rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		for _, selector := range rule.Selectors {
			kind, classes, ok := parseSelector(selector)
			if !ok {
				continue
			}
			sheet.rules = append(sheet.rules, sheetRule{kind: kind, classes: classes, decls: rule.Declarations})
		}
	}
	return sheet, nil
}

func parseSelector(selector string) (string, []string, bool) {
	selector = strings.NewReplacer(">", " ", "+", " ", "~", " ").Replace(selector)
	parts := strings.Fields(selector)
	if len(parts) == 0 {
		return "", nil, false
	}
	last := parts[len(parts)-1]
	if strings.ContainsAny(last, ":#[*") {
		return "", nil, false
	}

	segments := strings.Split(last, ".")
	kind := strings.ToLower(segments[0])
	var classes []string
	for _, c := range segments[1:] {
		if c == "" {
			return "", nil, false
		}
		classes = append(classes, c)
	}
	if kind == "" && len(classes) == 0 {
		return "", nil, false
	}
	return kind, classes, true
}

// Len returns the number of usable rules.
func (s *Stylesheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Apply layers the declarations of every rule matching a node of the given
// kind and classes over style, in source order.
func (s *Stylesheet) Apply(style lipgloss.Style, kind string, classes []string) lipgloss.Style {
	if s == nil {
		return style
	}
	have := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		have[c] = struct{}{}
	}

	for _, rule := range s.rules {
		if !rule.matches(kind, have) {
			continue
		}
		for _, decl := range rule.decls {
			style = applyDeclaration(style, decl)
		}
	}
	return style
}

func (r sheetRule) matches(kind string, have map[string]struct{}) bool {
	if r.kind != "" && r.kind != kind {
		return false
	}
	for _, c := range r.classes {
		if _, ok := have[c]; !ok {
			return false
		}
	}
	return true
}

func applyDeclaration(style lipgloss.Style, decl *css.Declaration) lipgloss.Style {
	value := strings.ToLower(strings.TrimSpace(decl.Value))
	switch strings.ToLower(decl.Property) {
	case "color":
		if c, ok := parseColor(value); ok {
			style = style.Foreground(c)
		}
	case "background", "background-color":
		if c, ok := parseColor(firstToken(value)); ok {
			style = style.Background(c)
		}
	case "font-weight":
		style = style.Bold(value == "bold" || value == "bolder" || weight(value) >= 600)
	case "font-style":
		style = style.Italic(value == "italic" || value == "oblique")
	case "text-decoration", "text-decoration-line":
		style = style.Underline(strings.Contains(value, "underline")).
			Strikethrough(strings.Contains(value, "line-through"))
	case "border-color":
		if c, ok := parseColor(firstToken(value)); ok {
			style = style.BorderForeground(c)
		}
	case "border":
		for _, token := range strings.Fields(value) {
			if c, ok := parseColor(token); ok {
				style = style.BorderForeground(c)
				break
			}
		}
	case "opacity":
		if f, err := strconv.ParseFloat(value, 64); err == nil && f < 1 {
			style = style.Faint(true)
		}
	}
	return style
}

func firstToken(value string) string {
	if fields := strings.Fields(value); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func weight(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

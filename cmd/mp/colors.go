package main

import (
	"strings"

	"github.com/mpath-dev/mpath"
	"github.com/mpath-dev/mpath/token"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	SepColor
	KeyColor
	ValueColor
	WildcardColor
	MatchColor
	MissColor
	DelColor
	InsColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[NameColor] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[KeyColor] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[WildcardColor] = color.CyanString
	colors.Map[MatchColor] = color.GreenString
	colors.Map[MissColor] = color.RedString
	colors.Map[DelColor] = color.RedString
	colors.Map[InsColor] = color.GreenString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

// colorizePath re-tokenizes a canonical path string and colors each
// raw source span by its role.  Literal spans take the color of the
// field the preceding operator opened.
func colorizePath(c *Colors, s string, ops token.Operators) string {
	if c == nil {
		return s
	}
	var (
		b    strings.Builder
		toks = token.Tokenize(s, ops)
		attr = NameColor
	)
	for i, t := range toks {
		end := len(s)
		if i+1 < len(toks) {
			end = toks[i+1].Pos.Off
		}
		raw := s[t.Pos.Off:end]
		switch {
		case t.Type == token.Literal:
			b.WriteString(c.Color(attr, raw))
		case t.Op == mpath.Star || t.Op == mpath.AnyChar:
			b.WriteString(c.Color(WildcardColor, raw))
		default:
			b.WriteString(c.Color(SepColor, raw))
			switch t.Op {
			case mpath.Delim:
				attr = NameColor
			case mpath.AttrDelim:
				attr = KeyColor
			case mpath.AttrEq:
				attr = ValueColor
			}
		}
	}
	return b.String()
}

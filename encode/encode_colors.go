package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/iox-format/go-iox/token"
)

type Colorable struct {
	Kind token.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
	CommentColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range token.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: CommentColor}] = color.BlueString
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = token.TNumber
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Kind = token.TNull
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = token.TBoolean
	colors.Map[able] = color.CyanString

	able.Kind = token.TString
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able = Colorable{Kind: token.TSeparator, Attr: ValueColor}
	colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	able = Colorable{Kind: token.TComment, Attr: ValueColor}
	colors.Map[able] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k token.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k token.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

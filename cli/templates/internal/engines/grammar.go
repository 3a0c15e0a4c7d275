package engines

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// templateLexer splits a template into literal text and output tags.
// Inside a tag the lexer switches to the "Tag" state until the closing braces.
var templateLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Open", Pattern: `\{\{`, Action: lexer.Push("Tag")},
		{Name: "Text", Pattern: `[^{]+`},
		{Name: "Brace", Pattern: `\{`},
	},
	"Tag": {
		{Name: "Close", Pattern: `\}\}`, Action: lexer.Pop()},
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'[^']*'`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[.|\[\]]`},
	},
})

// Grammar tags are false-positive highlighted by golang-ci-linter.
// Those tags are needed for participle parser package.
//
//nolint
type template struct {
	Parts []*part `@@*`
}

//nolint
type part struct {
	Pos lexer.Position

	Text   *string `  @(Text | Brace)`
	Output *output `| Open @@ Close`
}

//nolint
type output struct {
	Pos lexer.Position

	Value   *value    `@@`
	Filters []*filter `( "|" @@ )*`
}

//nolint
type filter struct {
	Pos lexer.Position

	Name string `@Ident`
}

//nolint
type value struct {
	String *string `  @String`
	Int    *string `| @Int`
	Path   *path   `| @@`
}

//nolint
type path struct {
	Head string     `@Ident`
	Tail []*segment `@@*`
}

//nolint
type segment struct {
	Key    *string `  "." @Ident`
	Index  *string `| "[" @Int "]"`
	Quoted *string `| "[" @String "]"`
}

var templateParser = participle.MustBuild[template](
	participle.Lexer(templateLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// String returns the dotted form of the path, used in error messages.
func (p *path) String() string {
	str := p.Head
	for _, seg := range p.Tail {
		switch {
		case seg.Key != nil:
			str += "." + *seg.Key
		case seg.Index != nil:
			str += "[" + *seg.Index + "]"
		case seg.Quoted != nil:
			str += "[\"" + *seg.Quoted + "\"]"
		}
	}
	return str
}

package parsetree

import (
	"fmt"
	"io"

	"github.com/CesarTecun/Compilador-Cesar/internal/token"
	"github.com/goccy/go-yaml"
)

// rawNode is the on-disk shape of a serialized parse tree: a human-readable
// format an external parser front-end (or a hand-written fixture) emits so
// the driver can decode a tree without linking against any particular
// parser generator's runtime. Kind is spelled out by name (e.g. "Program",
// "BinaryExpr" is not a kind here, "Add" is) rather than by its numeric
// value, so fixtures stay readable and stable across reorderings of the
// Kind enumeration.
type rawNode struct {
	KindName    string     `yaml:"kind"`
	Line        int        `yaml:"line,omitempty"`
	Column      int        `yaml:"column,omitempty"`
	Text        string     `yaml:"text,omitempty"`
	TypeKeyword string     `yaml:"type,omitempty"`
	Children    []*rawNode `yaml:"children,omitempty"`
}

// decoded is a rawNode with its KindName already resolved; it implements
// Node directly so astbuild.Build can walk it like any other parse tree.
type decoded struct {
	kind        Kind
	pos         token.Position
	text        string
	typeKeyword string
	children    []Node
}

func (d *decoded) Kind() Kind         { return d.kind }
func (d *decoded) Pos() token.Position { return d.pos }
func (d *decoded) Text() string        { return d.text }
func (d *decoded) TypeKeyword() string { return d.typeKeyword }
func (d *decoded) Children() []Node    { return d.children }

// DecodeYAML parses a YAML-encoded parse tree from r into a Node tree ready
// for astbuild.Build. This is the format cmd/compilador reads when no
// in-process parser is wired in: a stand-in for whatever concrete-syntax
// front end eventually produces a parsetree.Node tree directly.
func DecodeYAML(r io.Reader) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parsetree: reading input: %w", err)
	}

	var raw rawNode
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsetree: decoding YAML: %w", err)
	}

	node, err := resolve(&raw)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func resolve(raw *rawNode) (Node, error) {
	if raw == nil {
		return nil, nil
	}

	kind, ok := ParseKind(raw.KindName)
	if !ok {
		return nil, fmt.Errorf("parsetree: unknown node kind %q", raw.KindName)
	}

	children := make([]Node, len(raw.Children))
	for i, c := range raw.Children {
		child, err := resolve(c)
		if err != nil {
			return nil, fmt.Errorf("parsetree: child %d of %s: %w", i, raw.KindName, err)
		}
		children[i] = child
	}

	pos := token.Position{Line: raw.Line, Column: raw.Column}
	if raw.Line <= 0 {
		pos = token.Unknown
	}

	return &decoded{
		kind:        kind,
		pos:         pos,
		text:        raw.Text,
		typeKeyword: raw.TypeKeyword,
		children:    children,
	}, nil
}

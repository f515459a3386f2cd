package unit

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"github.com/yaklabco/gocorrect/pkg/source"
)

// ImporterFunc adapts a function to types.Importer.
type ImporterFunc func(path string) (*types.Package, error)

// Import implements types.Importer.
func (f ImporterFunc) Import(path string) (*types.Package, error) {
	return f(path)
}

// Option configures Resolve.
type Option func(*resolveOptions)

type resolveOptions struct {
	importer types.Importer
	fset     *token.FileSet
}

// WithImporter sets the importer used for the file's imports.
// The default reads compiler export data through go/importer.
func WithImporter(imp types.Importer) Option {
	return func(o *resolveOptions) {
		o.importer = imp
	}
}

// WithFileSet resolves into an existing file set.
func WithFileSet(fset *token.FileSet) Option {
	return func(o *resolveOptions) {
		o.fset = fset
	}
}

// ErrNoSyntax is returned when content could not be parsed at all.
var ErrNoSyntax = errors.New("unit: no syntax tree")

// Resolve parses and type-checks a single Go file as its own package.
// Syntax and type errors do not fail resolution; they are recorded as
// diagnostics on the returned unit.
func Resolve(ctx context.Context, path string, content []byte, session *Session, opts ...Option) (*Resolved, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	o := resolveOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fset == nil {
		o.fset = token.NewFileSet()
	}
	if o.importer == nil {
		o.importer = importer.Default()
	}
	if session == nil {
		session = NewSession(nil)
	}

	u := &Resolved{
		Path:     path,
		Content:  content,
		Text:     source.NewText(content),
		Fset:     o.fset,
		Session:  session,
		Identity: NewIdentity(path, content),
	}

	file, err := parser.ParseFile(o.fset, path, content, parser.ParseComments|parser.SkipObjectResolution)
	if file == nil {
		return nil, fmt.Errorf("resolve %s: %w: %w", path, ErrNoSyntax, err)
	}
	u.File = file
	u.Tok = o.fset.File(file.FileStart)
	if ast.IsGenerated(file) {
		u.Identity.Generated = true
	}

	var syntaxErrs scanner.ErrorList
	if errors.As(err, &syntaxErrs) {
		for _, se := range syntaxErrs {
			u.Diagnostics = append(u.Diagnostics, Diagnostic{
				Code:     CodeSyntaxError,
				Message:  se.Msg,
				Offset:   se.Pos.Offset,
				Length:   tokenLength(content, se.Pos.Offset),
				Severity: SeverityError,
				Source:   "parser",
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	u.Info = &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{
		Importer:    o.importer,
		FakeImportC: true,
		Error: func(err error) {
			var terr types.Error
			if errors.As(err, &terr) {
				u.Diagnostics = append(u.Diagnostics, u.typeDiagnostic(terr))
			}
		},
	}

	// Check reports every problem through conf.Error; the returned error
	// only repeats the first one.
	u.Pkg, _ = conf.Check(file.Name.Name, o.fset, []*ast.File{file}, u.Info)
	u.checkSwitches()

	slices.SortStableFunc(u.Diagnostics, func(a, b Diagnostic) int {
		return a.Offset - b.Offset
	})

	return u, nil
}

func (u *Resolved) typeDiagnostic(terr types.Error) Diagnostic {
	d := Diagnostic{
		Code:     classify(terr.Msg),
		Message:  terr.Msg,
		Offset:   u.Offset(terr.Pos),
		Severity: SeverityError,
		Source:   "types",
	}
	if terr.Soft {
		d.Severity = SeverityWarning
	}
	if d.Offset < 0 {
		d.Offset = 0
		return d
	}

	if d.Code == CodeUnusedImport {
		for _, spec := range u.File.Imports {
			if spec.Pos() == terr.Pos || spec.Path.Pos() == terr.Pos {
				d.Offset = u.Offset(spec.Pos())
				d.Length = int(spec.End() - spec.Pos())
				return d
			}
		}
	}

	d.Length = tokenLength(u.Content, d.Offset)
	return d
}

func classify(msg string) string {
	switch {
	case strings.HasSuffix(msg, "imported and not used"),
		strings.Contains(msg, " imported as ") && strings.HasSuffix(msg, " and not used"):
		return CodeUnusedImport
	case strings.HasPrefix(msg, "declared and not used"):
		return CodeUnusedVariable
	default:
		return CodeTypeError
	}
}

// tokenLength returns the length of the Go token starting at offset.
func tokenLength(content []byte, offset int) int {
	if offset < 0 || offset >= len(content) {
		return 0
	}

	src := content[offset:]
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, src, nil, 0)

	pos, tok, lit := s.Scan()
	if tok == token.EOF || file.Offset(pos) != 0 {
		return 0
	}
	if lit != "" {
		return len(lit)
	}
	return len(tok.String())
}

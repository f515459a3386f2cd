package unit

import (
	"go/ast"
	"strconv"
	"strings"
)

// TestSupport is the framework handle for Go test files.
type TestSupport struct {
	// testing is the local name of the "testing" import.
	testing string
}

// DetectTestSupport returns a handle when u is a _test.go file importing
// "testing" under a usable name, and nil otherwise.
func DetectTestSupport(u *Resolved) *TestSupport {
	if u == nil || u.File == nil || !strings.HasSuffix(u.Path, "_test.go") {
		return nil
	}

	for _, spec := range u.File.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != "testing" {
			continue
		}

		name := "testing"
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		return &TestSupport{testing: name}
	}
	return nil
}

// ImportName returns the local name of the testing package.
func (ts *TestSupport) ImportName() string {
	return ts.testing
}

// TestParam returns the *testing.T parameter name of a top-level TestXxx
// function. ok is false for anything else, including tests whose parameter
// is unnamed or blank.
func (ts *TestSupport) TestParam(fn *ast.FuncDecl) (name string, ok bool) {
	if fn == nil || fn.Recv != nil || fn.Body == nil || !isTestName(fn.Name.Name) {
		return "", false
	}
	if fn.Type.TypeParams != nil && len(fn.Type.TypeParams.List) > 0 {
		return "", false
	}

	params := fn.Type.Params.List
	if len(params) != 1 || len(params[0].Names) != 1 {
		return "", false
	}

	star, isStar := params[0].Type.(*ast.StarExpr)
	if !isStar {
		return "", false
	}
	sel, isSel := star.X.(*ast.SelectorExpr)
	if !isSel || sel.Sel.Name != "T" {
		return "", false
	}
	pkg, isIdent := sel.X.(*ast.Ident)
	if !isIdent || pkg.Name != ts.testing {
		return "", false
	}

	name = params[0].Names[0].Name
	if name == "_" {
		return "", false
	}
	return name, true
}

// isTestName follows the go test rule: "Test" alone, or followed by a
// character that is not a lower-case letter.
func isTestName(name string) bool {
	rest, found := strings.CutPrefix(name, "Test")
	if !found {
		return false
	}
	return rest == "" || !(rest[0] >= 'a' && rest[0] <= 'z')
}

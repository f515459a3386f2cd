package correction

import (
	"go/ast"
	"go/types"
	"strconv"

	"github.com/yaklabco/gocorrect/pkg/unit"
)

// SessionHelper answers type questions about the context's file.
type SessionHelper struct {
	unit *unit.Resolved
}

func newSessionHelper(u *unit.Resolved) *SessionHelper {
	return &SessionHelper{unit: u}
}

// TypeOf returns the type of e, or nil.
func (h *SessionHelper) TypeOf(e ast.Expr) types.Type {
	if h.unit.Info == nil {
		return nil
	}
	return h.unit.Info.TypeOf(e)
}

// Qualifier returns how the file refers to pkg: "" for the file's own
// package, the import's local name otherwise. ok is false when the file
// does not import pkg.
func (h *SessionHelper) Qualifier(pkg *types.Package) (name string, ok bool) {
	if pkg == nil || pkg == h.unit.Pkg {
		return "", true
	}

	for _, spec := range h.unit.File.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != pkg.Path() {
			continue
		}
		if spec.Name == nil {
			return pkg.Name(), true
		}
		switch spec.Name.Name {
		case "_":
			continue
		case ".":
			return "", true
		default:
			return spec.Name.Name, true
		}
	}
	return "", false
}

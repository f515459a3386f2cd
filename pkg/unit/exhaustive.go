package unit

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

// checkSwitches reports expression switches over a named constant type that
// lack a default clause and leave some of the type's constants unhandled.
func (u *Resolved) checkSwitches() {
	if u.Info == nil || u.File == nil {
		return
	}

	insp := inspector.New([]*ast.File{u.File})
	insp.Preorder([]ast.Node{(*ast.SwitchStmt)(nil)}, func(n ast.Node) {
		sw, _ := n.(*ast.SwitchStmt)
		named, missing := u.MissingSwitchCases(sw)
		if len(missing) == 0 {
			return
		}

		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = c.Name()
		}

		u.Diagnostics = append(u.Diagnostics, Diagnostic{
			Code:     CodeMissingSwitchCase,
			Message:  fmt.Sprintf("missing cases in switch of type %s: %s", named.Obj().Name(), strings.Join(names, ", ")),
			Offset:   u.Offset(sw.Switch),
			Length:   len(token.SWITCH.String()),
			Severity: SeverityWarning,
			Source:   "exhaustive",
		})
	})
}

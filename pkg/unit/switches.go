package unit

import (
	"cmp"
	"go/ast"
	"go/types"
	"slices"
)

// NamedConstants returns the package-level constants whose type is exactly
// named, in declaration order. Unexported constants of other packages are
// left out.
func (u *Resolved) NamedConstants(named *types.Named) []*types.Const {
	pkg := named.Obj().Pkg()
	if pkg == nil {
		return nil
	}

	var consts []*types.Const
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}
		if pkg != u.Pkg && !c.Exported() {
			continue
		}
		consts = append(consts, c)
	}

	// Imported constants may all sit at NoPos; keep those alphabetical.
	slices.SortStableFunc(consts, func(a, b *types.Const) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return consts
}

// MissingSwitchCases returns the tag type of sw and the constants of that
// type no clause handles, in declaration order. Constants are compared by
// value, so only the first constant of each unhandled value is listed.
// A switch with a default clause, or whose tag is not a named type, has no
// missing cases.
func (u *Resolved) MissingSwitchCases(sw *ast.SwitchStmt) (*types.Named, []*types.Const) {
	if u.Info == nil || sw == nil || sw.Tag == nil {
		return nil, nil
	}

	named, ok := types.Unalias(u.Info.TypeOf(sw.Tag)).(*types.Named)
	if !ok {
		return nil, nil
	}

	handled := make(map[string]bool)
	for _, stmt := range sw.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}
		if clause.List == nil {
			return named, nil
		}
		for _, expr := range clause.List {
			if tv, ok := u.Info.Types[expr]; ok && tv.Value != nil {
				handled[tv.Value.ExactString()] = true
			}
		}
	}

	var missing []*types.Const
	for _, c := range u.NamedConstants(named) {
		key := c.Val().ExactString()
		if handled[key] {
			continue
		}
		handled[key] = true
		missing = append(missing, c)
	}
	return named, missing
}

// Package producers contains the bundled fixes and assists.
package producers

import "github.com/yaklabco/gocorrect/pkg/correction"

// Producer IDs.
const (
	IDExchangeOperands       = "exchange-operands"
	IDConvertToShortVarDecl  = "convert-to-short-var-decl"
	IDAddTParallel           = "add-t-parallel"
	IDRemoveUnusedImport     = "remove-unused-import"
	IDAddMissingSwitchCases  = "add-missing-switch-cases"
	LintPreferVarDeclaration = "prefer-var-declaration"
)

//nolint:gochecknoglobals // Read-only kind table.
var (
	AssistExchangeOperands = correction.Kind{
		ID:       "assist.exchangeOperands",
		Priority: correction.PriorityLow,
		Message:  "Exchange operands",
	}
	AssistConvertToShortVarDecl = correction.Kind{
		ID:       "assist.convertToShortVarDecl",
		Priority: correction.PriorityLow,
		Message:  "Convert to short variable declaration",
	}
	AssistAddTParallel = correction.Kind{
		ID:       "assist.addTParallel",
		Priority: correction.PriorityDefault,
		Message:  "Add %s.Parallel()",
	}
	FixRemoveUnusedImport = correction.Kind{
		ID:       "fix.removeUnusedImport",
		Priority: correction.PriorityHigh,
		Message:  "Remove unused import %s",
	}
	FixAddSwitchCase = correction.Kind{
		ID:       "fix.addSwitchCase",
		Priority: correction.PriorityDefault,
		Message:  "Add case %s",
	}
)

package producers

import (
	"github.com/yaklabco/gocorrect/pkg/correction"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

//nolint:gochecknoinits // Registration into the default registry.
func init() {
	Register(correction.DefaultRegistry)
}

// Register adds the bundled producers to reg.
func Register(reg *correction.Registry) {
	reg.Register(correction.Factory{
		ID:     IDExchangeOperands,
		Assist: true,
		New:    func() correction.Provider { return NewExchangeOperands() },
	})
	reg.Register(correction.Factory{
		ID:     IDConvertToShortVarDecl,
		Assist: true,
		New:    func() correction.Provider { return NewConvertToShortVarDecl() },
	})
	reg.Register(correction.Factory{
		ID:     IDAddTParallel,
		Assist: true,
		New:    func() correction.Provider { return NewAddTParallel() },
	})
	reg.Register(correction.Factory{
		ID:    IDRemoveUnusedImport,
		Codes: []string{unit.CodeUnusedImport},
		New:   func() correction.Provider { return NewRemoveUnusedImport() },
	})
	reg.Register(correction.Factory{
		ID:    IDAddMissingSwitchCases,
		Codes: []string{unit.CodeMissingSwitchCase},
		New:   func() correction.Provider { return NewAddMissingSwitchCases() },
	})
}

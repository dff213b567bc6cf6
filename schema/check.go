package schema

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/iox-format/go-iox/ioerr"
)

func compileCheck(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, ioerr.Wrap(ioerr.InvalidSchema, nil, err)
	}
	return prg, nil
}

func (d *MemberDef) compileCheck() error {
	if d.Check == "" || d.check != nil {
		return nil
	}
	prg, err := compileCheck(d.Check)
	if err != nil {
		return err
	}
	d.check = prg
	return nil
}

// Satisfies runs the member's check against v, which is bound to the name
// value. It returns nil when the member has no check.
func (d *MemberDef) Satisfies(v any) error {
	if d.Check == "" {
		return nil
	}
	prg := d.check
	if prg == nil {
		var err error
		if prg, err = compileCheck(d.Check); err != nil {
			return err
		}
	}
	res, err := expr.Run(prg, map[string]any{"value": v})
	if err != nil {
		return ioerr.Wrap(ioerr.CheckFailed, nil, err)
	}
	if ok, _ := res.(bool); !ok {
		return ioerr.Newf(ioerr.CheckFailed, nil, "%s", d.Check)
	}
	return nil
}

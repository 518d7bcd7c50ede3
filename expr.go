package formcheck

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/dmitrymomot/formcheck/pkg/cache"
)

var exprEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable("value", cel.DynType))
})

// Compiled programs keyed by source.
var programs = cache.NewLRU[string, cel.Program](256)

// Expr compiles a CEL expression into a rule. The coerced value is bound to
// the variable "value" and the expression must yield a bool, e.g.
//
//	formcheck.Expr(`value % 2 == 0`)
//	formcheck.Expr(`value.startsWith("ACME-")`)
//
// Evaluation errors count as violations.
func Expr(source string) (Rule, error) {
	prg, err := programs.GetOrCompute(source, func() (cel.Program, error) {
		return compileExpr(source)
	})
	if err != nil {
		return Rule{}, err
	}
	return Rule{kind: ruleExpr, prg: prg, source: source}, nil
}

func compileExpr(source string) (cel.Program, error) {
	env, err := exprEnv()
	if err != nil {
		return nil, errors.Join(ErrInvalidExpr, err)
	}

	ast, iss := env.Compile(source)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Join(ErrInvalidExpr, iss.Err())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%w: %q yields %s, want bool", ErrInvalidExpr, source, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Join(ErrInvalidExpr, err)
	}
	return prg, nil
}

// MustExpr is like Expr but panics on compile errors.
func MustExpr(source string) Rule {
	r, err := Expr(source)
	if err != nil {
		panic(err)
	}
	return r
}

func evalExpr(prg cel.Program, v Value) bool {
	if prg == nil {
		return false
	}
	out, _, err := prg.Eval(map[string]any{"value": v.Interface()})
	if err != nil {
		return false
	}
	ok, isBool := out.Value().(bool)
	return isBool && ok
}

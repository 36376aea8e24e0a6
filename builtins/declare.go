package builtins

import (
	"sprout/eval"
	"sprout/types"
	"strconv"
	"strings"
)

// splitDeclaration parses "name = value"
func splitDeclaration(payload string) (string, string, error) {
	name, value, ok := strings.Cut(payload, " = ")
	if !ok {
		return "", "", types.NewError(types.E_PARSE, "expected 'name = value', got %q", strings.TrimSpace(payload))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", types.NewError(types.E_PARSE, "missing variable name")
	}
	return name, strings.TrimSpace(value), nil
}

// stmtInt declares a number: int name = value
// A literal without '.' is stored as Integer, with '.' as Float. Anything
// else is evaluated as an arithmetic expression (Float).
func stmtInt(ctx *Context, payload string) error {
	name, value, err := splitDeclaration(payload)
	if err != nil {
		return err
	}

	if !strings.Contains(value, ".") {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			ctx.Env().Set(name, types.NewInt(n))
			return nil
		}
	} else if f, err := strconv.ParseFloat(value, 64); err == nil {
		ctx.Env().Set(name, types.NewFloat(f))
		return nil
	}

	f, err := ctx.Eval.Arith(value)
	if err != nil {
		return err
	}
	ctx.Env().Set(name, f)
	return nil
}

// stmtFloat declares a Float: float name = value
func stmtFloat(ctx *Context, payload string) error {
	name, value, err := splitDeclaration(payload)
	if err != nil {
		return err
	}
	f, err := ctx.Eval.Arith(value)
	if err != nil {
		return err
	}
	ctx.Env().Set(name, f)
	return nil
}

// stmtStr declares text: str name = value
func stmtStr(ctx *Context, payload string) error {
	name, value, err := splitDeclaration(payload)
	if err != nil {
		return err
	}
	ctx.Env().Set(name, types.NewStr(eval.Unquote(value)))
	return nil
}

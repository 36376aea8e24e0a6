package builtins

import (
	"fmt"
	"sprout/eval"
	"sprout/types"
	"strconv"
	"strings"
)

// stmtPrint writes a variable's value, or the payload text itself when no
// variable of that name exists
// print: payload
func stmtPrint(ctx *Context, payload string) error {
	payload = colonPayload(payload)
	text := payload
	if val, ok := ctx.Env().Get(payload); ok {
		text = val.String()
	}
	_, err := fmt.Fprintln(ctx.Out, text)
	return err
}

// stmtInput asks for a line and stores it
// input: name, prompt
// The variable must already exist; its current type decides whether the
// reply is stored as a Float or as text.
func stmtInput(ctx *Context, payload string) error {
	args, err := payloadArgs(payload, 2)
	if err != nil {
		return err
	}
	name, prompt := args[0], eval.Unquote(args[1])

	current, err := ctx.Env().Lookup(name)
	if err != nil {
		return err
	}
	if ctx.In == nil {
		return fmt.Errorf("input: no input source")
	}

	reply, err := ctx.In.Prompt(prompt)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}

	if types.IsNumeric(current) {
		f, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
		if err != nil {
			return types.NewError(types.E_PARSE, "%q is not a number", reply)
		}
		ctx.Env().Set(name, types.NewFloat(f))
		return nil
	}

	ctx.Env().Set(name, types.NewStr(reply))
	return nil
}

// stmtBreak stops the program
func stmtBreak(ctx *Context, payload string) error {
	return ErrHalt
}

package builtins

import (
	"math"
	"math/rand"
	"sprout/types"
	"strconv"
)

// stmtPi overwrites an existing variable with the Float value of pi
// pi: name
func stmtPi(ctx *Context, payload string) error {
	name := colonPayload(payload)
	if _, err := ctx.Env().Lookup(name); err != nil {
		return err
	}
	ctx.Env().Set(name, types.NewFloat(math.Pi))
	return nil
}

// stmtMeth stores a random integer in [low, high] as a Float
// meth: name, low, high
func stmtMeth(ctx *Context, payload string) error {
	args, err := payloadArgs(payload, 3)
	if err != nil {
		return err
	}
	name := args[0]
	if _, err := ctx.Env().Lookup(name); err != nil {
		return err
	}

	low, err := intBound(ctx, args[1])
	if err != nil {
		return err
	}
	high, err := intBound(ctx, args[2])
	if err != nil {
		return err
	}
	if low > high {
		return types.NewError(types.E_RANGE, "low %d is greater than high %d", low, high)
	}

	rng := ctx.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	ctx.Env().Set(name, types.NewFloat(float64(randRange(rng, low, high))))
	return nil
}

// randRange draws uniformly from [low, high]. Spans wider than int64 are
// drawn from Uint64; the sum wraps back into range.
func randRange(rng *rand.Rand, low, high int64) int64 {
	span := uint64(high) - uint64(low) + 1
	switch {
	case span == 0:
		return int64(rng.Uint64())
	case span <= math.MaxInt64:
		return low + rng.Int63n(int64(span))
	default:
		return low + int64(rng.Uint64()%span)
	}
}

// intBound resolves a meth bound: an integer literal, or a variable holding
// an integral number
func intBound(ctx *Context, tok string) (int64, error) {
	if val, ok := ctx.Env().Get(tok); ok {
		f, err := types.ToFloat(val)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, types.NewError(types.E_TYPE, "%s is not an integer", tok)
		}
		if f < math.MinInt64 || f >= -math.MinInt64 {
			return 0, types.NewError(types.E_RANGE, "%s is out of integer range", tok)
		}
		return int64(f), nil
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, types.NewError(types.E_PARSE, "%q is not an integer", tok)
	}
	return n, nil
}

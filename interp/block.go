package interp

// BlockState is the observable state of the control-flow machine
type BlockState int

const (
	Outside        BlockState = iota // no construct open
	AwaitingBranch                   // no branch matched yet; elif/else may still run
	Running                          // current branch executes
	Skipping                         // a branch already ran; suppressed until the terminator
)

// String returns the state name used in traces
func (s BlockState) String() string {
	switch s {
	case Outside:
		return "outside"
	case AwaitingBranch:
		return "awaiting"
	case Running:
		return "running"
	case Skipping:
		return "skipping"
	default:
		return "unknown"
	}
}

// block is the single open conditional construct. Only one exists at a
// time; a new if overwrites it.
type block struct {
	active   bool // inside a construct
	taken    bool // some branch matched
	skipping bool // current branch is suppressed
}

// State derives the machine state from the block flags
func (b *block) State() BlockState {
	switch {
	case !b.active:
		return Outside
	case !b.skipping:
		return Running
	case !b.taken:
		return AwaitingBranch
	default:
		return Skipping
	}
}

// runs reports whether a normal statement executes in the current state
func (b *block) runs() bool {
	return !b.active || !b.skipping
}

// openIf starts a new construct, discarding any open one
func (b *block) openIf(cond bool) {
	b.active = true
	b.taken = cond
	b.skipping = !cond
}

// elif applies an elif line. cond is only called when no branch has been
// taken yet. Without an open construct the line is ignored.
func (b *block) elif(cond func() bool) {
	if !b.active {
		return
	}
	if b.taken {
		b.skipping = true
		return
	}
	if cond() {
		b.taken = true
		b.skipping = false
		return
	}
	b.skipping = true
}

// otherwise applies an else line
func (b *block) otherwise() {
	if !b.active {
		return
	}
	if b.taken {
		b.skipping = true
		return
	}
	b.taken = true
	b.skipping = false
}

// close handles the terminator line
func (b *block) close() {
	*b = block{}
}

package regs

// Op identifies how a register was written.
type Op uint8

const (
	OpSet Op = iota
	OpSetBits
	OpClearBits
	OpReplaceBits
)

func (o Op) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpSetBits:
		return "setbits"
	case OpClearBits:
		return "clrbits"
	case OpReplaceBits:
		return "replace"
	default:
		return "?"
	}
}

// Write is one recorded register write. Value is the operand as passed
// (already shifted for ReplaceBits); After is the latched register value,
// always 0 for write-only registers.
type Write struct {
	Reg   string
	Op    Op
	Value uint32
	Mask  uint32
	After uint32
}

// Sim is a host register file that records every write in order.
// Registers spring into existence with a zero reset value on first use.
type Sim struct {
	regs  map[string]*SimRegister
	trace []Write
}

func NewSim() *Sim {
	return &Sim{regs: make(map[string]*SimRegister)}
}

// Register implements Bus.
func (s *Sim) Register(name string) Register { return s.reg(name) }

func (s *Sim) reg(name string) *SimRegister {
	r, ok := s.regs[name]
	if !ok {
		r = &SimRegister{sim: s, name: name}
		s.regs[name] = r
	}
	return r
}

// Preset loads a reset value without recording a write.
func (s *Sim) Preset(name string, v uint32) { s.reg(name).value = v }

// WriteOnly marks a strobe register (BSRR, OUTSET, OUTCLR): writes are
// recorded but not latched and reads return 0.
func (s *Sim) WriteOnly(name string) { s.reg(name).writeOnly = true }

// Value returns the current latched value.
func (s *Sim) Value(name string) uint32 {
	r, ok := s.regs[name]
	if !ok {
		return 0
	}
	return r.Get()
}

// Trace returns a copy of every write so far, oldest first.
func (s *Sim) Trace() []Write {
	return append([]Write(nil), s.trace...)
}

// WritesTo filters the trace to one register.
func (s *Sim) WritesTo(name string) []Write {
	var out []Write
	for _, w := range s.trace {
		if w.Reg == name {
			out = append(out, w)
		}
	}
	return out
}

// Index returns the trace position of the first write matching pred, or -1.
func (s *Sim) Index(pred func(Write) bool) int {
	for i, w := range s.trace {
		if pred(w) {
			return i
		}
	}
	return -1
}

// ClearTrace drops the recorded writes but keeps register values.
func (s *Sim) ClearTrace() { s.trace = s.trace[:0] }

// SimRegister is one simulated register.
type SimRegister struct {
	sim       *Sim
	name      string
	value     uint32
	writeOnly bool
}

func (r *SimRegister) Get() uint32 {
	if r.writeOnly {
		return 0
	}
	return r.value
}

func (r *SimRegister) Set(v uint32) { r.store(OpSet, v, 0xFFFF_FFFF, v) }

func (r *SimRegister) SetBits(v uint32) { r.store(OpSetBits, v, v, r.Get()|v) }

func (r *SimRegister) ClearBits(v uint32) { r.store(OpClearBits, v, v, r.Get()&^v) }

func (r *SimRegister) ReplaceBits(value uint32, mask uint32, pos uint8) {
	m := mask << pos
	v := (value & mask) << pos
	r.store(OpReplaceBits, v, m, r.Get()&^m|v)
}

func (r *SimRegister) store(op Op, operand, mask, next uint32) {
	if !r.writeOnly {
		r.value = next
	}
	r.sim.trace = append(r.sim.trace, Write{
		Reg:   r.name,
		Op:    op,
		Value: operand,
		Mask:  mask,
		After: r.Get(),
	})
}

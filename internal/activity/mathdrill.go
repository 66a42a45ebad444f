package activity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Op is a math drill operation.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
	OpMultiply
)

// MathDrill asks single-digit arithmetic facts. Problems are drawn
// randomly without immediately repeating the previous pair.
type MathDrill struct {
	op        Op
	questions int
	asked     int
	a, b      int
	rng       *rand.Rand
}

var _ Drill = (*MathDrill)(nil)

// NewMathDrill creates a drill of n questions for the given operation.
func NewMathDrill(op Op, questions int, rng *rand.Rand) *MathDrill {
	d := &MathDrill{op: op, questions: questions, rng: rng}
	d.next()
	return d
}

func (d *MathDrill) next() {
	prevA, prevB := d.a, d.b
	for {
		d.a = d.rng.Intn(10)
		d.b = d.rng.Intn(10)
		if d.op == OpSubtract && d.b > d.a {
			d.a, d.b = d.b, d.a
		}
		if d.a != prevA || d.b != prevB {
			return
		}
	}
}

func (d *MathDrill) symbol() string {
	switch d.op {
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	}
	return "+"
}

func (d *MathDrill) answer() int {
	switch d.op {
	case OpSubtract:
		return d.a - d.b
	case OpMultiply:
		return d.a * d.b
	}
	return d.a + d.b
}

func (d *MathDrill) Prompt() string {
	return fmt.Sprintf("%d %s %d = ?", d.a, d.symbol(), d.b)
}

func (d *MathDrill) Submit(answer string) Judgment {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return Reject
	}
	if n == d.answer() {
		return Correct
	}
	return Incorrect
}

func (d *MathDrill) Expected() string {
	return strconv.Itoa(d.answer())
}

func (d *MathDrill) Advance() bool {
	d.asked++
	if d.asked >= d.questions {
		return false
	}
	d.next()
	return true
}

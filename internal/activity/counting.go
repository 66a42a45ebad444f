package activity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

var countingSteps = []int{2, 5, 10}

// CountingDrill shows a short skip-counting run and asks for the next
// number in the sequence.
type CountingDrill struct {
	questions int
	asked     int
	step      int
	start     int
	rng       *rand.Rand
}

var _ Drill = (*CountingDrill)(nil)

// NewCountingDrill creates a drill of n questions.
func NewCountingDrill(questions int, rng *rand.Rand) *CountingDrill {
	d := &CountingDrill{questions: questions, rng: rng}
	d.next()
	return d
}

func (d *CountingDrill) next() {
	prevStep, prevStart := d.step, d.start
	for {
		d.step = countingSteps[d.rng.Intn(len(countingSteps))]
		d.start = d.step * (d.rng.Intn(5) + 1)
		if d.step != prevStep || d.start != prevStart {
			return
		}
	}
}

func (d *CountingDrill) answer() int {
	return d.start + 3*d.step
}

func (d *CountingDrill) Prompt() string {
	seq := []string{
		strconv.Itoa(d.start),
		strconv.Itoa(d.start + d.step),
		strconv.Itoa(d.start + 2*d.step),
		"__",
	}
	return fmt.Sprintf("What comes next?  %s", strings.Join(seq, ", "))
}

func (d *CountingDrill) Submit(answer string) Judgment {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return Reject
	}
	if n == d.answer() {
		return Correct
	}
	return Incorrect
}

func (d *CountingDrill) Expected() string {
	return strconv.Itoa(d.answer())
}

func (d *CountingDrill) Advance() bool {
	d.asked++
	if d.asked >= d.questions {
		return false
	}
	d.next()
	return true
}

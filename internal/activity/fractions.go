package activity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// FractionDrill asks the student to reduce fractions to lowest terms.
// Answers are typed as "n/d"; anything that doesn't parse as a fraction
// re-prompts the same question without recording an attempt.
type FractionDrill struct {
	questions  int
	asked      int
	num, den   int // reduced form
	multiplier int
	rng        *rand.Rand
}

var _ Drill = (*FractionDrill)(nil)

// NewFractionDrill creates a drill of n questions.
func NewFractionDrill(questions int, rng *rand.Rand) *FractionDrill {
	d := &FractionDrill{questions: questions, rng: rng}
	d.next()
	return d
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (d *FractionDrill) next() {
	for {
		num := d.rng.Intn(8) + 1
		den := d.rng.Intn(8) + 2
		if num >= den {
			continue
		}
		if g := gcd(num, den); g > 1 {
			num /= g
			den /= g
		}
		mult := d.rng.Intn(4) + 2
		if num == d.num && den == d.den && mult == d.multiplier {
			continue
		}
		d.num, d.den, d.multiplier = num, den, mult
		return
	}
}

func (d *FractionDrill) Prompt() string {
	return fmt.Sprintf("Reduce %d/%d to lowest terms", d.num*d.multiplier, d.den*d.multiplier)
}

// parseFraction reads "n/d" with optional spaces around the slash.
func parseFraction(s string) (int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected n/d")
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	if den == 0 {
		return 0, 0, fmt.Errorf("zero denominator")
	}
	return n, den, nil
}

func (d *FractionDrill) Submit(answer string) Judgment {
	n, den, err := parseFraction(answer)
	if err != nil {
		return Reject
	}
	if n == d.num && den == d.den {
		return Correct
	}
	return Incorrect
}

func (d *FractionDrill) Expected() string {
	return fmt.Sprintf("%d/%d", d.num, d.den)
}

func (d *FractionDrill) Advance() bool {
	d.asked++
	if d.asked >= d.questions {
		return false
	}
	d.next()
	return true
}

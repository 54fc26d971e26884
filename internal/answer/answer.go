// Package answer picks the fortune shown at the end of a reveal.
package answer

import (
	"errors"
	"math/rand"
	"time"
)

var ErrNoAnswers = errors.New("answer list is empty")

// Picker returns answers uniformly at random. It does not avoid repeats.
type Picker struct {
	answers []string
	rng     *rand.Rand
}

// New builds a picker over answers. A nil rng is seeded from the wall clock.
func New(answers []string, rng *rand.Rand) (*Picker, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{
		answers: append([]string(nil), answers...),
		rng:     rng,
	}, nil
}

// Pick returns one answer.
func (p *Picker) Pick() string {
	return p.answers[p.rng.Intn(len(p.answers))]
}

func (p *Picker) Len() int { return len(p.answers) }

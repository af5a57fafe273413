package generator

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// BacktrackGenerator builds a full valid board by randomized backtracking,
// then clears cells down to the difficulty tier's filled count. The random
// source is owned by the generator instance, so a fixed seed reproduces the
// same puzzle stream.
type BacktrackGenerator struct {
	seed int64
	rng  *rand.Rand
	log  logrus.FieldLogger
}

// New returns a generator seeded with seed; a zero seed picks the current
// time.
func New(seed int64) *BacktrackGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &BacktrackGenerator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		log:  logrus.StandardLogger(),
	}
}

// WithLogger replaces the generator's logger and returns the generator.
func (g *BacktrackGenerator) WithLogger(l logrus.FieldLogger) *BacktrackGenerator {
	g.log = l
	return g
}

// Seed reports the seed the generator was constructed with.
func (g *BacktrackGenerator) Seed() int64 { return g.seed }

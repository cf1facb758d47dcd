package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/ceelo/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Sides is the number of faces on a Cee-Lo die
const Sides = 6

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller is a Roller backed by math/rand. The source is not safe for
// concurrent use on its own, so every draw holds mu.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// RollTriple draws three independent six-sided dice in roll order
func RollTriple(r Roller) [3]int {
	return [3]int{r.Roll(Sides), r.Roll(Sides), r.Roll(Sides)}
}

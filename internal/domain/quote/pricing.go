package quote

import (
	"math/rand"
	"sync"
)

// PricePolicy prices an add-on item. The reference policy is random; real
// deployments swap in a rate-card implementation without touching the
// quote-and-confirm protocol.
type PricePolicy interface {
	PriceFor(item Item) int
}

const (
	minBreakfastPrice = 10
	maxBreakfastPrice = 99
)

type RandomPricePolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomPricePolicy(seed int64) *RandomPricePolicy {
	return &RandomPricePolicy{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// PriceFor returns a uniform random integer price in [10, 99].
func (p *RandomPricePolicy) PriceFor(_ Item) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return minBreakfastPrice + p.rng.Intn(maxBreakfastPrice-minBreakfastPrice+1)
}

// FixedPricePolicy pins prices for tests.
type FixedPricePolicy struct {
	Price int
}

func (p *FixedPricePolicy) PriceFor(_ Item) int {
	return p.Price
}

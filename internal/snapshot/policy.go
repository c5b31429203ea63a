package snapshot

import (
	"math/rand/v2"
	"sync"

	"github.com/lshigami/nihongo-test/internal/model"
)

// SelectionPolicy orders a subsection's pool before the builder takes the
// first N unused questions from it. Whatever order it returns is what the
// candidate sees; it is never re-derived later.
type SelectionPolicy interface {
	Order(pool []model.SnapshotQuestion) []model.SnapshotQuestion
}

// OrderedPolicy keeps the bank's order.
type OrderedPolicy struct{}

func (OrderedPolicy) Order(pool []model.SnapshotQuestion) []model.SnapshotQuestion {
	out := make([]model.SnapshotQuestion, len(pool))
	copy(out, pool)
	return out
}

// ShuffledPolicy permutes the pool with a seeded random source. Safe for
// concurrent builds.
type ShuffledPolicy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewShuffledPolicy(seed uint64) *ShuffledPolicy {
	return &ShuffledPolicy{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *ShuffledPolicy) Order(pool []model.SnapshotQuestion) []model.SnapshotQuestion {
	out := make([]model.SnapshotQuestion, len(pool))
	copy(out, pool)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func PolicyByName(name string, seed uint64) SelectionPolicy {
	if name == "shuffled" {
		return NewShuffledPolicy(seed)
	}
	return OrderedPolicy{}
}

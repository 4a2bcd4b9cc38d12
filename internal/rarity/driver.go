package rarity

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/saraseidl/monster/internal/formula"
	"github.com/saraseidl/monster/internal/riscu"
)

// EntryFactory mints a fresh State at the guest's entry point. The rarity
// driver never loads an ELF itself; it is handed a factory so it can
// create as many independent entry states as the initial fill and every
// restart-from-entry refill need.
type EntryFactory func() *riscu.State

// Driver runs the rarity simulation loop: a population of
// concretely-executing states advanced in data-parallel rounds, scored by
// how rarely the fingerprints they touch have been seen across the whole
// run, with the rarest survivors kept and the rest refilled.
type Driver struct {
	cfg   Config
	entry EntryFactory

	// dummy is the scratch formula.Formula handed to riscu.Step. Every
	// value this driver ever produces is concrete — random bytes from
	// randomIO, never a formula.Input — so Step's symbolic branches are
	// unreachable and dummy is never actually read from or written to.
	// Step's signature still requires a non-nil *formula.Formula; passing
	// one real, harmless instance here is simpler than auditing every
	// exec.go call site for a nil-safe fallback.
	dummy *formula.Formula

	rng *rand.Rand

	mu     sync.Mutex
	counts map[Fingerprint]uint64

	findings []Finding
	pop      []*member
	nextID   int
}

// NewDriver constructs a rarity driver. cfg must already satisfy
// Config.Validate.
func NewDriver(cfg Config, entry EntryFactory) *Driver {
	return &Driver{
		cfg:    cfg,
		entry:  entry,
		dummy:  formula.New(),
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xd1b54a32d192ed03)),
		counts: make(map[Fingerprint]uint64),
	}
}

// Counts returns a snapshot of the global fingerprint visit-count map.
func (d *Driver) Counts() map[Fingerprint]uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[Fingerprint]uint64, len(d.counts))
	for k, v := range d.counts {
		out[k] = v
	}
	return out
}

// Run executes cfg.Iterations rounds and returns every finding recorded
// along the way.
func (d *Driver) Run(ctx context.Context) ([]Finding, error) {
	d.fill()
	for round := 0; round < d.cfg.Iterations; round++ {
		if err := ctx.Err(); err != nil {
			return d.findings, err
		}
		if err := d.roundOnce(ctx); err != nil {
			return d.findings, err
		}
		d.refill()
	}
	return d.findings, nil
}

// fill creates amount_of_states fresh members if the population is empty,
// the case true only before the very first round.
func (d *Driver) fill() {
	if len(d.pop) > 0 {
		return
	}
	for i := 0; i < d.cfg.AmountOfStates; i++ {
		d.pop = append(d.pop, d.freshMember())
	}
}

func (d *Driver) freshMember() *member {
	id := d.nextID
	d.nextID++
	s := d.entry()
	s.ID = id
	return &member{state: s, io: newRandomIO(d.nextSeed())}
}

// copyOf forks a survivor with a fresh random-input source: the copy's
// registers and memory carry over, but its reads going forward draw from
// a newly seeded stream rather than replaying the parent's.
func (d *Driver) copyOf(parent *member) *member {
	id := d.nextID
	d.nextID++
	clone := parent.state.Fork(id)
	return &member{state: clone, io: newRandomIO(d.nextSeed())}
}

func (d *Driver) nextSeed() uint64 {
	return d.rng.Uint64()
}

// roundOnce advances every population member by up to cfg.StepSize steps
// concurrently — no guest state is shared across members, so each round
// parallelizes freely — then merges every member's observations into the
// global fingerprint-count map.
func (d *Driver) roundOnce(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, m := range d.pop {
		m := m
		g.Go(func() error {
			findings := advance(m, d.dummy, d.cfg.StepSize)

			d.mu.Lock()
			d.findings = append(d.findings, findings...)
			for _, fp := range m.touched {
				d.counts[fp]++
			}
			d.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// score computes m's mean over the (post-merge) global counts of every
// fingerprint it touched this round.
func (d *Driver) score(m *member) float64 {
	counts := make([]uint64, len(m.touched))
	for i, fp := range m.touched {
		counts[i] = d.counts[fp]
	}
	return ComputeMean(counts, d.cfg.Mean)
}

// selectSurvivors ranks the population by score ascending (rarer first)
// and keeps the best cfg.Selection.
func (d *Driver) selectSurvivors() []*member {
	sort.SliceStable(d.pop, func(i, j int) bool {
		return d.score(d.pop[i]) < d.score(d.pop[j])
	})
	n := d.cfg.Selection
	if n > len(d.pop) {
		n = len(d.pop)
	}
	return append([]*member(nil), d.pop[:n]...)
}

// refill selects survivors and tops the population back up to
// amount_of_states, each new slot either a copy of a random survivor (with
// probability copy_init_ratio) or a fresh restart from the entry point.
func (d *Driver) refill() {
	survivors := d.selectSurvivors()

	next := make([]*member, 0, d.cfg.AmountOfStates)
	next = append(next, survivors...)
	for len(next) < d.cfg.AmountOfStates {
		if d.rng.Float64() < d.cfg.CopyInitRatio {
			parent := survivors[d.rng.IntN(len(survivors))]
			next = append(next, d.copyOf(parent))
		} else {
			next = append(next, d.freshMember())
		}
	}
	d.pop = next
}

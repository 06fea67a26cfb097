package prayerset

import (
	"math/rand/v2"
	"time"
)

// RNG is the source of randomness for group selection.
type RNG interface {
	IntN(n int) int
}

// NewRNG returns a deterministic generator for seed.
func NewRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed))
}

// DaySeed turns a date into a seed that is the same all day, so that random
// groups do not change while a set is being prayed.
func DaySeed(date time.Time) uint64 {
	y, m, d := date.Date()
	return uint64(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / (24 * 60 * 60))
}

// Expand turns the definition into the list of prayer keys to say.
func (d Definition) Expand(rng RNG) []string {
	var out []string
	for _, it := range d.Order {
		if it.Group == "" {
			out = append(out, it.Prayer)
			continue
		}
		out = append(out, it.Rule.pick(rng, d.group(it.Group))...)
	}
	return out
}

// Build expands the definition into a Set positioned at its first prayer.
func (d Definition) Build(rng RNG) *Set {
	return New(d.Title, d.Expand(rng))
}

func (d Definition) group(name string) []string {
	if prayers, ok := d.Groups[name]; ok {
		return prayers
	}
	return []string{name}
}

func (r Rule) pick(rng RNG, group []string) []string {
	if len(group) == 0 {
		return nil
	}
	if r.Chance < 100 && rng.IntN(100) >= r.Chance {
		return nil
	}

	lo, hi := r.MinCount, r.MaxCount
	if !r.HasCount {
		lo, hi = len(group), len(group)
	}
	count := lo
	if hi > lo {
		count += rng.IntN(hi - lo + 1)
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if r.Random {
			out = append(out, group[rng.IntN(len(group))])
		} else {
			out = append(out, group[i%len(group)])
		}
	}
	return out
}

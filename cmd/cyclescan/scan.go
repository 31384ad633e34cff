package main

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/talos-cipher/talos/talos/automata"
	"github.com/talos-cipher/talos/talos/schedule"
)

// trajectory is one seed's rendered state sequence, recorded up to (and
// including) the first state this run has already produced locally, or up
// to the generation bound.
type trajectory struct {
	seed   uint32
	states []string
	cells  int
}

// result is one row of the scan report.
type result struct {
	test            int
	seed            uint32
	finalGeneration int
	avgAlive        float64
	globalDuplicate bool
}

// scanSeed renders the seed's trajectory under the cipher rule. Each
// generation's state is captured before stepping, exactly as the
// encryptor would observe it.
func scanSeed(seed uint32, template string, generations int) (trajectory, error) {
	cm := schedule.NewCharMap(seed)
	table, err := schedule.ParseTable(template, cm)
	if err != nil {
		return trajectory{}, err
	}
	a, err := automata.FromTable(table, schedule.CipherRule)
	if err != nil {
		return trajectory{}, err
	}

	tr := trajectory{
		seed:  seed,
		cells: a.State().Rows() * a.State().Cols(),
	}
	seen := make(map[string]struct{}, generations)
	for gen := 0; gen <= generations; gen++ {
		repr := a.String()
		tr.states = append(tr.states, repr)
		if _, dup := seen[repr]; dup {
			return tr, nil
		}
		seen[repr] = struct{}{}
		a.Step()
	}
	return tr, nil
}

// scanAll runs per-seed scans concurrently, then merges them sequentially
// in seed order so the global-duplicate flags are deterministic: a state
// counts as a global duplicate iff an earlier seed (or an earlier
// generation of the same seed) already produced it.
func scanAll(seeds []uint32, template string, generations, workers int) ([]result, error) {
	trajectories := make([]trajectory, len(seeds))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			tr, err := scanSeed(seed, template, generations)
			if err != nil {
				return err
			}
			trajectories[i] = tr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// firstSeenBy records which test first produced each state.
	firstSeenBy := make(map[string]int)
	results := make([]result, len(trajectories))
	for i, tr := range trajectories {
		res := result{test: i, seed: tr.seed}
		aliveTotal := 0
		visited := 0

		for gen, repr := range tr.states {
			aliveTotal += strings.Count(repr, string(automata.TrueChar))
			visited++
			res.finalGeneration = gen
			if owner, dup := firstSeenBy[repr]; dup {
				res.globalDuplicate = owner != i
				break
			}
			firstSeenBy[repr] = i
		}
		res.avgAlive = float64(aliveTotal) / (float64(tr.cells) * float64(visited))
		results[i] = res
	}
	return results, nil
}

// Package lib wires distance fusion, the distance cache, reachability
// ordering and cluster extraction into one core creation pass.
package lib

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jhaldane/mgbin/lib/cache"
	"github.com/jhaldane/mgbin/lib/datatypes"
	"github.com/jhaldane/mgbin/lib/distance"
	"github.com/jhaldane/mgbin/lib/extract"
	"github.com/jhaldane/mgbin/lib/profile"
	"github.com/jhaldane/mgbin/lib/reachability"
	"github.com/jhaldane/mgbin/lib/settings"
)

// A ClusterResult is everything a run produced. Contigs and Bins are
// aligned; Records is the reachability ordering the bins were extracted
// from.
type ClusterResult struct {
	Contigs []datatypes.Contig
	Bins    []int
	NumBins int
	Records []reachability.Record
}

// NothingToCluster reports whether the run ended early because no contig
// passed the length cutoff.
func (r *ClusterResult) NothingToCluster() bool {
	return len(r.Contigs) == 0
}

// A CoreCreator runs the core creation pass: load features, fuse or reload
// distances, build the reachability ordering, extract bins, persist labels.
// The phases are strictly sequential; any failure before the final persist
// leaves the store untouched.
type CoreCreator struct {
	config settings.ClusterSettings
}

func NewCoreCreator(config settings.ClusterSettings) *CoreCreator {
	return &CoreCreator{config: config.ComputeSettingsFields()}
}

func (c *CoreCreator) Run(store profile.Store) (*ClusterResult, error) {
	// LOADED
	contigs, err := store.Contigs(c.config.MinLength)
	if err != nil {
		return nil, fmt.Errorf("loading contig features: %v", err)
	}
	contigsLoaded.Set(float64(len(contigs)))
	log.Printf("loaded %d contigs at length cutoff %d\n", len(contigs), c.config.MinLength)
	if len(contigs) == 0 {
		log.Printf("nothing to cluster\n")
		return &ClusterResult{}, nil
	}
	if err := checkNames(contigs); err != nil {
		return nil, err
	}

	// DISTANCED
	dists, err := c.distances(contigs)
	if err != nil {
		return nil, err
	}

	// ORDERED
	started := time.Now()
	cores := reachability.CoreDistances(dists, c.config.CoreNeighbors)
	records := reachability.Order(dists, cores)
	phaseDuration.WithLabelValues("order").Observe(time.Since(started).Seconds())

	// EXTRACTED
	started = time.Now()
	lengths := make([]int, len(contigs))
	for i, contig := range contigs {
		lengths[i] = contig.Length
	}
	bins, numBins := extract.Bins(records, lengths, extract.Params{
		MinPts:    c.config.MinPts,
		MinSize:   c.config.MinSize,
		Steepness: c.config.ValleySteepness,
	})
	phaseDuration.WithLabelValues("extract").Observe(time.Since(started).Seconds())
	binsMade.Set(float64(numBins))

	// PERSISTED
	assignment := make(map[string]int, len(contigs))
	for i, contig := range contigs {
		assignment[contig.Name] = bins[i]
	}
	if err := store.SetBinAssignments(assignment); err != nil {
		return nil, fmt.Errorf("persisting bin assignments: %v", err)
	}
	log.Printf("made %d bins\n", numBins)

	return &ClusterResult{Contigs: contigs, Bins: bins, NumBins: numBins, Records: records}, nil
}

// distances returns the fused condensed matrix, via the cache when a saved
// prefix is configured and the saved file matches the current contig set.
func (c *CoreCreator) distances(contigs []datatypes.Contig) (*distance.Condensed, error) {
	fingerprint := datatypes.Fingerprint(contigs, c.config.MinLength)

	if c.config.SavedDistsPrefix != "" {
		dists, err := cache.Load(c.config.SavedDistsPrefix, fingerprint, len(contigs))
		if err == nil {
			distanceCacheHits.Inc()
			log.Printf("reusing saved distances from %s\n", c.config.SavedDistsPrefix)
			return dists, nil
		}
		if errors.Is(err, cache.ErrCacheStale) && !c.config.Force {
			return nil, fmt.Errorf("%v (rerun with force to recompute)", err)
		}
		distanceCacheMisses.Inc()
		log.Printf("no usable distance cache: %v\n", err)
	}

	started := time.Now()
	dists, err := distance.ComputeCondensed(contigs, c.config.Workers)
	if err != nil {
		return nil, err
	}
	distancePairsComputed.Add(float64(len(dists.Dists)))
	phaseDuration.WithLabelValues("distance").Observe(time.Since(started).Seconds())

	if c.config.SavedDistsPrefix != "" && c.config.KeepDists {
		// Caching is an optimization; a failure to save must not kill the run.
		if err := cache.Save(c.config.SavedDistsPrefix, fingerprint, dists); err != nil {
			log.Printf("warning: could not save distances to %s: %v\n", c.config.SavedDistsPrefix, err)
		} else {
			log.Printf("saved distances to %s\n", c.config.SavedDistsPrefix)
		}
	}
	return dists, nil
}

func checkNames(contigs []datatypes.Contig) error {
	seen := make(map[string]bool, len(contigs))
	for _, c := range contigs {
		if c.Name == "" {
			return fmt.Errorf("contig with empty name in profile")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate contig name %s in profile", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Package cache persists the condensed distance matrix between runs.
//
// Pairwise distance computation is quadratic in the contig count and
// dominates the runtime of large assemblies; caching it lets clustering be
// re-run with different density parameters for free. A cache file records
// the fingerprint of the contig set it was built from, and a file whose
// fingerprint does not match the current set is never read back.
package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jhaldane/mgbin/lib/distance"
	"github.com/klauspost/compress/zstd"
)

// ErrCacheMiss means there is no usable cache file at the prefix: absent,
// unreadable, or truncated. Callers fall through to recomputation.
var ErrCacheMiss = errors.New("distance cache miss")

// ErrCacheStale means a cache file exists but was built from a different
// contig set or length cutoff. Reusing it would silently produce wrong bins,
// so callers must either abort or explicitly discard it.
var ErrCacheStale = errors.New("distance cache was built from a different contig set")

const (
	magic   = uint32(0x4d474244) // "MGBD"
	version = uint32(1)
)

func fileName(prefix string) string {
	return prefix + ".mgd"
}

// Load reads the condensed distance matrix saved under prefix, verifying
// that it was built for the given contig-set fingerprint and point count.
func Load(prefix string, fingerprint uint64, points int) (*distance.Condensed, error) {
	file, err := os.Open(fileName(prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, err)
	}
	defer file.Close()

	var header struct {
		Magic       uint32
		Version     uint32
		Fingerprint uint64
		Points      uint64
	}
	if err := binary.Read(file, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: short header: %v", ErrCacheMiss, err)
	}
	if header.Magic != magic || header.Version != version {
		return nil, fmt.Errorf("%w: not a distance cache file", ErrCacheMiss)
	}
	if header.Fingerprint != fingerprint || header.Points != uint64(points) {
		return nil, fmt.Errorf("%w: cached %d points with fingerprint %016x, current set has %d with %016x",
			ErrCacheStale, header.Points, header.Fingerprint, points, fingerprint)
	}

	zr, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheMiss, err)
	}
	defer zr.Close()

	pairs := points * (points - 1) / 2
	raw := make([]byte, 8*pairs)
	if _, err := io.ReadFull(zr, raw); err != nil {
		return nil, fmt.Errorf("%w: truncated distance data: %v", ErrCacheMiss, err)
	}
	dists := make([]float64, pairs)
	for i := range dists {
		dists[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return distance.FromValues(points, dists)
}

// Save writes the condensed matrix under prefix, keyed by the contig-set
// fingerprint. The write goes to a temporary file first and is renamed into
// place, so a crash mid-write cannot corrupt a previously valid cache.
func Save(prefix string, fingerprint uint64, d *distance.Condensed) error {
	tmp := fileName(prefix) + ".tmp"
	file, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return err
	}

	header := struct {
		Magic       uint32
		Version     uint32
		Fingerprint uint64
		Points      uint64
	}{magic, version, fingerprint, uint64(d.Points)}

	err = binary.Write(file, binary.LittleEndian, &header)
	if err == nil {
		var zw *zstd.Encoder
		zw, err = zstd.NewWriter(file)
		if err == nil {
			buf := make([]byte, 8)
			for _, v := range d.Dists {
				binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
				if _, err = zw.Write(buf); err != nil {
					break
				}
			}
			if cerr := zw.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, fileName(prefix))
}

package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jhaldane/mgbin/lib"
	"github.com/jhaldane/mgbin/lib/profile"
	"github.com/jhaldane/mgbin/lib/reporter"
	"github.com/jhaldane/mgbin/lib/settings"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var profilePath string
	var importPath string
	var minLength int
	var minSize int64
	var minPts int
	var savedDistsPrefix string
	var keepDists bool
	var force bool
	var valleySteepness float64
	var workers int
	var resultsDirectory string
	var reporters string
	var parquetMaxRowsPerRowGroup int64
	var metricsAddr string
	var cpuprofile string

	flag.StringVar(&profilePath, "profile", "", "The contig profile parquet file to cluster.")
	flag.StringVar(&importPath, "import", "", "A tab-separated feature table to convert into the profile file before clustering.")
	flag.IntVar(&minLength, "minLength", 500, "Contigs shorter than this many bp are excluded from clustering.")
	flag.Int64Var(&minSize, "minSize", 0, "Minimum cumulative bp for a bin. 0 disables the criterion.")
	flag.IntVar(&minPts, "minPts", 0, "Density parameter and minimum contig count for a bin. 0 disables the criterion.")
	flag.StringVar(&savedDistsPrefix, "savedDistsPrefix", "", "Path prefix for the saved distance matrix. Empty means recompute every run.")
	flag.BoolVar(&keepDists, "keepDists", false, "Whether to save freshly computed distances under savedDistsPrefix.")
	flag.BoolVar(&force, "force", false, "Overwrite existing bin assignments and recompute over a stale distance cache.")
	flag.Float64Var(&valleySteepness, "valleySteepness", settings.DefaultValleySteepness, "How much higher a valley's walls must be than its interior on the reachability plot.")
	flag.IntVar(&workers, "workers", 0, "Worker count for the pairwise distance computation. 0 means GOMAXPROCS.")
	flag.StringVar(&resultsDirectory, "resultsDirectory", ".", "The directory for the bin report files.")
	flag.StringVar(&reporters, "reporters", "csv", "Comma-separated report formats: csv, parquet.")
	flag.Int64Var(&parquetMaxRowsPerRowGroup, "parquetMaxRowsPerRowGroup", 100000, "Number of rows per row group in parquet reports.")
	flag.StringVar(&metricsAddr, "metrics-address", "", "If set, serve prometheus metrics on this address during the run.")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "write cpu profile here")
	flag.Parse()

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Fatalf("failed to create cpu profile file: %v", err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if profilePath == "" {
		log.Fatal("need a -profile file")
	}

	if metricsAddr != "" {
		router := mux.NewRouter()
		router.Handle("/metrics", promhttp.Handler())
		router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok\n"))
		})
		go func() {
			log.Printf("serving metrics on %s\n", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, router); err != nil {
				log.Printf("metrics endpoint failed: %v\n", err)
			}
		}()
	}

	if importPath != "" {
		file, err := os.Open(importPath)
		if err != nil {
			log.Fatalf("failed to open feature table: %v", err)
		}
		contigs, err := profile.ImportTSV(file)
		file.Close()
		if err != nil {
			log.Fatalf("failed to import feature table: %v", err)
		}
		if err := profile.WriteProfile(profilePath, contigs); err != nil {
			log.Fatalf("failed to write profile: %v", err)
		}
	}

	store := profile.NewParquetStore(profilePath)
	clustered, err := store.IsClustered()
	if err != nil {
		log.Fatalf("failed to read profile: %v", err)
	}
	if clustered && !force {
		log.Fatalf("%s already has bin assignments; rerun with -force to overwrite them", profilePath)
	}

	config := settings.ClusterSettings{
		MinLength:        minLength,
		MinSize:          minSize,
		MinPts:           minPts,
		SavedDistsPrefix: savedDistsPrefix,
		KeepDists:        keepDists,
		Force:            force,
		ValleySteepness:  valleySteepness,
		Workers:          workers,
	}

	result, err := lib.NewCoreCreator(config).Run(store)
	if err != nil {
		log.Fatalf("core creation failed: %v", err)
	}
	if result.NothingToCluster() {
		log.Printf("no contigs passed the length cutoff, nothing written\n")
		return
	}

	stats := reporter.ComputeBinStats(result.Contigs, result.Bins)
	for _, name := range strings.Split(reporters, ",") {
		switch strings.TrimSpace(name) {
		case "csv":
			r := reporter.NewCsvReporter(resultsDirectory)
			if err := r.WriteAssignments(result.Contigs, result.Bins); err != nil {
				log.Fatalf("csv reporter failed: %v", err)
			}
			if err := r.WriteBinStats(stats); err != nil {
				log.Fatalf("csv reporter failed: %v", err)
			}
		case "parquet":
			r := reporter.NewParquetReporter(resultsDirectory, parquetMaxRowsPerRowGroup)
			if err := r.WriteAssignments(result.Contigs, result.Bins); err != nil {
				log.Fatalf("parquet reporter failed: %v", err)
			}
			if err := r.WriteBinStats(stats); err != nil {
				log.Fatalf("parquet reporter failed: %v", err)
			}
		case "":
		default:
			log.Fatalf("unknown reporter %q", name)
		}
	}
}

package crack

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search kinds.
const (
	kindSeed  = "seed"
	kindKey   = "key"
	kindToken = "token"
)

// Search results.
const (
	resultFound    = "found"
	resultNotFound = "not_found"
	resultCanceled = "canceled"
)

var (
	// seedsScanned counts seeds tried by kind
	seedsScanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tempers_crack_seeds_scanned_total",
		Help: "Total seeds tried by search kind",
	}, []string{"kind"})

	// crackTotal counts searches by kind and result
	crackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tempers_crack_total",
		Help: "Total seed searches by kind and result",
	}, []string{"kind", "result"})
)

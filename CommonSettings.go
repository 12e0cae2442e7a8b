package rigid2d

import (
	"math"

	"github.com/charmbracelet/log"
)

// @file
// Settings that can be overriden for your application
//

// Tunable Constants

// Two vertices closer than this (in body coordinates) are merged when a path
// is closed.
const VertexMergeTol = 1e-8

// Convergence tolerance of the centroid search.
const CentroidTol = 1e-6

// A centroid supplied through SetCentroid must lie this close to the computed
// one when centroid verification is on.
const CentroidVerifyTol = 0.01

// The starting simplex of the centroid search is offset from the center of
// mass by this fraction of the body's width and height.
const CentroidSimplexScale = 0.1

// Default cap on the major iterations of the centroid search.
const CentroidMaxIterations = 2000

// Index value meaning "no vertex" or "no edge".
const E_nullIndex = -1

// Per-body tunables. A Polygon copies these at construction.
type Settings struct {
	// Run the cheap bounding test before the exact edge test.
	UseIntersectionPossible bool

	// A vertex closer than this to an edge, but not penetrating, is a contact.
	DistanceTol float64

	// Vertices deeper than this behind an edge are not reported against it.
	MaxPenetration float64

	// Arc length between decorated vertices on circular edges.
	CurveSpacing float64

	// Check that SetCentroid is given something close to the real centroid.
	VerifyCentroid bool

	// Emit a marker for every vertex in CreateCanvasPath.
	ShowVertexes bool
	MarkerSize   float64

	// The centroid search fails with ErrCentroid after this many major
	// iterations.
	CentroidMaxIterations int
}

func MakeSettings() Settings {
	return Settings{
		UseIntersectionPossible: true,
		DistanceTol:             0.01,
		MaxPenetration:          0.5,
		CurveSpacing:            0.1,
		VerifyCentroid:          false,
		ShowVertexes:            false,
		MarkerSize:              0.05,
		CentroidMaxIterations:   CentroidMaxIterations,
	}
}

func (s Settings) IsValid() bool {
	return s.CentroidMaxIterations > 0 &&
		isFinite(s.DistanceTol) && s.DistanceTol >= 0 &&
		isFinite(s.MaxPenetration) && s.MaxPenetration >= 0 &&
		isFinite(s.CurveSpacing) && s.CurveSpacing > 0 &&
		isFinite(s.MarkerSize) && s.MarkerSize >= 0
}

var logger = log.Default()

// SetLogger replaces the logger used for debug output of this package.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

func rbAssert(a bool) {
	if !a {
		panic("rigid2d: assertion failed")
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package cascade_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlspread/cascade"
	"github.com/katalvlaran/lvlspread/core"
	"github.com/katalvlaran/lvlspread/matrix"
)

// referenceGraph is the 6-vertex benchmark network from the Kempe et al.
// independent-cascade literature: every edge carries probability 0.2, and
// from seed {6} the expected final spread sits near 1.6.
func referenceGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	edges := [][2]string{
		{"1", "2"}, {"1", "3"}, {"1", "5"},
		{"2", "1"},
		{"3", "2"},
		{"4", "2"}, {"4", "3"}, {"4", "6"},
		{"5", "3"}, {"5", "4"}, {"5", "6"},
		{"6", "4"}, {"6", "5"},
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], 0.2); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}

	return g
}

// EquivalenceSuite asserts the two strategies realize the same diffusion
// process: identical deterministic behavior at the probability extremes
// (covered in the unit tests) and matching spread distributions in the
// stochastic middle, checked here via mean spread on the reference graph.
type EquivalenceSuite struct {
	suite.Suite

	graph *core.Graph
	dense *matrix.Probability
}

func (s *EquivalenceSuite) SetupSuite() {
	s.graph = referenceGraph(s.T())
	m, err := matrix.NewProbability(s.graph)
	require.NoError(s.T(), err)
	s.dense = m
}

// meanSpread averages final activated-set sizes over independent trials,
// one fresh substream per trial.
func (s *EquivalenceSuite) meanSpread(trials int, run func(rng *rand.Rand) int) float64 {
	total := 0
	for i := 0; i < trials; i++ {
		total += run(rand.New(rand.NewSource(int64(i))))
	}

	return float64(total) / float64(trials)
}

const (
	equivalenceTrials = 20000

	// Expected mean spread from seed {6}: direct enumeration of the
	// dominant cascade paths puts it between 1.45 and 1.75; with 20k
	// trials the standard error is under 0.01, so the band is generous.
	meanSpreadLow  = 1.45
	meanSpreadHigh = 1.75

	// Two independent 20k-trial estimates of the same quantity differ by
	// well under 0.08 unless the strategies disagree.
	strategyGap = 0.08
)

// TestEdgeEnumerationMean pins the edge-enumeration strategy's mean spread.
func (s *EquivalenceSuite) TestEdgeEnumerationMean() {
	mean := s.meanSpread(equivalenceTrials, func(rng *rand.Rand) int {
		res, err := cascade.Diffuse(s.graph, []string{"6"}, cascade.WithRand(rng))
		require.NoError(s.T(), err)

		return res.Size()
	})
	require.GreaterOrEqual(s.T(), mean, meanSpreadLow, "edge-enumeration mean spread too low")
	require.LessOrEqual(s.T(), mean, meanSpreadHigh, "edge-enumeration mean spread too high")
}

// TestFrontierMean pins the frontier strategy's mean spread.
func (s *EquivalenceSuite) TestFrontierMean() {
	mean := s.meanSpread(equivalenceTrials, func(rng *rand.Rand) int {
		res, err := cascade.DiffuseDense(s.dense, []string{"6"}, cascade.WithRand(rng))
		require.NoError(s.T(), err)

		return res.Size()
	})
	require.GreaterOrEqual(s.T(), mean, meanSpreadLow, "frontier mean spread too low")
	require.LessOrEqual(s.T(), mean, meanSpreadHigh, "frontier mean spread too high")
}

// TestStrategiesAgree compares the two estimates directly.
func (s *EquivalenceSuite) TestStrategiesAgree() {
	enum := s.meanSpread(equivalenceTrials, func(rng *rand.Rand) int {
		res, err := cascade.Diffuse(s.graph, []string{"6"}, cascade.WithRand(rng))
		require.NoError(s.T(), err)

		return res.Size()
	})
	dense := s.meanSpread(equivalenceTrials, func(rng *rand.Rand) int {
		res, err := cascade.DiffuseDense(s.dense, []string{"6"}, cascade.WithRand(rng))
		require.NoError(s.T(), err)

		return res.Size()
	})
	require.InDelta(s.T(), enum, dense, strategyGap,
		"edge-enumeration and frontier strategies diverged: %g vs %g", enum, dense)
}

// TestSeedAlwaysActivated holds across both strategies and many streams.
func (s *EquivalenceSuite) TestSeedAlwaysActivated() {
	for i := int64(0); i < 100; i++ {
		res, err := cascade.Diffuse(s.graph, []string{"6"}, cascade.WithRand(rand.New(rand.NewSource(i))))
		require.NoError(s.T(), err)
		require.True(s.T(), res.Contains("6"))
		require.Contains(s.T(), res.Layers[0], "6")

		res, err = cascade.DiffuseDense(s.dense, []string{"6"}, cascade.WithRand(rand.New(rand.NewSource(i))))
		require.NoError(s.T(), err)
		require.True(s.T(), res.Contains("6"))
		require.Contains(s.T(), res.Layers[0], "6")
	}
}

func TestEquivalenceSuite(t *testing.T) {
	suite.Run(t, new(EquivalenceSuite))
}

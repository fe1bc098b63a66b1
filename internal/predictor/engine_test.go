package predictor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlendProbabilityBounds tests the hard probability floor and ceiling
func TestBlendProbabilityBounds(t *testing.T) {
	baseline := 165.0

	for offset := -1000; offset <= 1000; offset += 25 {
		score := int(baseline) + offset
		for _, raw := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
			p := BlendProbability(score, baseline, raw)
			assert.GreaterOrEqual(t, p, 0.03, "score=%d raw=%f", score, raw)
			assert.LessOrEqual(t, p, 0.97, "score=%d raw=%f", score, raw)
		}
	}
}

// TestBlendProbabilityMonotonic tests that probability never decreases as
// the score increases
func TestBlendProbabilityMonotonic(t *testing.T) {
	baseline := 160.0
	raw := 0.4

	prev := BlendProbability(100, baseline, raw)
	for score := 101; score <= 300; score++ {
		p := BlendProbability(score, baseline, raw)
		assert.GreaterOrEqual(t, p, prev, "score=%d", score)
		prev = p
	}
}

// TestBlendProbabilityCentering tests the exact value at the venue baseline
func TestBlendProbabilityCentering(t *testing.T) {
	// At diff=0 the heuristic component is exactly 0.30 + 0.5*0.67 = 0.635
	raw := 0.5
	p := BlendProbability(165, 165.0, raw)
	expected := 0.65*0.635 + 0.35*raw
	assert.InDelta(t, expected, p, 1e-9)

	raw = 0.0
	p = BlendProbability(200, 200.0, raw)
	assert.InDelta(t, 0.65*0.635, p, 1e-9)
}

// TestBlendProbabilityScenario tests the worked example
func TestBlendProbabilityScenario(t *testing.T) {
	// diff=5, logistic=1/(1+e^-0.6)≈0.6457, heuristic≈0.7326, final≈0.6687
	p := BlendProbability(170, 165.0, 0.55)
	logistic := 1.0 / (1.0 + math.Exp(-0.6))
	expected := 0.65*(0.30+logistic*0.67) + 0.35*0.55
	assert.InDelta(t, expected, p, 1e-9)
	assert.InDelta(t, 0.6687, p, 0.001)
}

// TestBlendMarginAtOrBelowBaseline tests that no margin is asserted when the
// score does not exceed the venue's winning average
func TestBlendMarginAtOrBelowBaseline(t *testing.T) {
	// Exactly at the baseline routes to nil
	assert.Nil(t, BlendMargin(165, 165.0, 40.0))

	// Below the baseline, whatever the model says
	assert.Nil(t, BlendMargin(150, 165.0, 120.0))
	assert.Nil(t, BlendMargin(150, 165.0, -30.0))
}

// TestBlendMarginFloor tests the minimum reportable margin
func TestBlendMarginFloor(t *testing.T) {
	// Tiny diff and a large negative raw margin still floor at 1
	m := BlendMargin(166, 165.0, -100.0)
	require.NotNil(t, m)
	assert.Equal(t, 1, *m)

	for score := 166; score <= 300; score++ {
		m := BlendMargin(score, 165.0, -50.0)
		require.NotNil(t, m)
		assert.GreaterOrEqual(t, *m, 1, "score=%d", score)
	}
}

// TestBlendMarginScenario tests the worked example
func TestBlendMarginScenario(t *testing.T) {
	// diff=5, base=3.0, round(0.7*3.0 + 0.3*12) = round(5.7) = 6
	m := BlendMargin(170, 165.0, 12.0)
	require.NotNil(t, m)
	assert.Equal(t, 6, *m)
}

// TestClassify tests the outcome trichotomy
func TestClassify(t *testing.T) {
	margin := 6

	out := Classify(0.67, &margin)
	assert.Equal(t, OutcomeBattingWin, out.Kind)
	require.NotNil(t, out.Margin)
	assert.Equal(t, 6, *out.Margin)

	out = Classify(0.48, &margin)
	assert.Equal(t, OutcomeBowlingWin, out.Kind)
	assert.Nil(t, out.Margin)

	out = Classify(0.62, nil)
	assert.Equal(t, OutcomeTooClose, out.Kind)
	assert.Nil(t, out.Margin)

	// Exactly 0.5 with a margin is not a batting win
	out = Classify(0.5, &margin)
	assert.Equal(t, OutcomeBowlingWin, out.Kind)
}

// TestClassifyConsistency tests that a batting win always carries a margin
// and a margin-bearing result always has probability above half
func TestClassifyConsistency(t *testing.T) {
	margins := []*int{nil}
	for _, v := range []int{1, 5, 40} {
		m := v
		margins = append(margins, &m)
	}

	for p := 0.0; p <= 1.0; p += 0.01 {
		for _, m := range margins {
			out := Classify(p, m)
			if out.Kind == OutcomeBattingWin {
				require.NotNil(t, out.Margin)
				assert.Greater(t, p, 0.5)
			}
			if m == nil {
				assert.NotEqual(t, OutcomeBattingWin, out.Kind)
			}
		}
	}
}

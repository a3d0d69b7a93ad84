package svgmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanColorsFirstSeenOrder(t *testing.T) {
	pc := newPlanColors()
	assert.Equal(t, planPalette[0], pc.fill("P1"))
	assert.Equal(t, planPalette[1], pc.fill("P2"))
	// repeats keep their assignment
	assert.Equal(t, planPalette[0], pc.fill("P1"))
	assert.Equal(t, planPalette[2], pc.fill("P3"))
}

func TestPlanColorsCycle(t *testing.T) {
	pc := newPlanColors()
	for i := 0; i < len(planPalette); i++ {
		pc.fill(string(rune('a' + i)))
	}
	assert.Equal(t, planPalette[0], pc.fill("overflow"))
}

func TestPlanColorsEmptyPlan(t *testing.T) {
	pc := newPlanColors()
	assert.Equal(t, defaultFill, pc.fill(""))
	// the default assignment consumes no palette slot
	assert.Equal(t, planPalette[0], pc.fill("P1"))
}

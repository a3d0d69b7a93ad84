package svgmap

// planPalette is the fixed color rotation for plan categories.
var planPalette = []string{"#6C889E", "#5D5249", "#B9AE5A", "#123449", "#076587", "#894747"}

const (
	defaultFill = "#DBCDAE"
	unusedFill  = "#d3d3d3"
)

// planColors assigns palette colors to plan names in first-seen order,
// cycling modulo the palette size. State is local to one annotator run so
// output stays deterministic across runs.
type planColors struct {
	assigned map[string]string
}

func newPlanColors() *planColors {
	return &planColors{assigned: map[string]string{}}
}

// fill returns the color for a plan, assigning the next palette entry on
// first sight. Empty plan names map to the default fill.
func (pc *planColors) fill(plan string) string {
	if plan == "" {
		return defaultFill
	}
	if c, ok := pc.assigned[plan]; ok {
		return c
	}
	c := planPalette[len(pc.assigned)%len(planPalette)]
	pc.assigned[plan] = c
	return c
}

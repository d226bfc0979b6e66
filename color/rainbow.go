package color

// rainbowAnchors is the fixed seven-point hue cycle: red, orange, yellow,
// green, blue, indigo, violet.
var rainbowAnchors = []Color{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 165, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 128, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 75, G: 0, B: 130},
	{R: 238, G: 130, B: 238},
}

// Rainbow maps t in [0,1] onto the spectrum, interpolating between adjacent
// anchors. Values outside the range clamp to the ends.
func Rainbow(t float64) Color {
	if t <= 0 {
		return rainbowAnchors[0]
	}
	if t >= 1 {
		return rainbowAnchors[len(rainbowAnchors)-1]
	}
	scaled := t * float64(len(rainbowAnchors)-1)
	i := int(scaled)
	return Lerp(rainbowAnchors[i], rainbowAnchors[i+1], scaled-float64(i))
}

package coi

// NormalizePosition maps a crossover at pos (microns) on an SC of length
// scLength with its centromere at centromere onto [0, 1]. The short arm is
// rescaled to [0, 0.5] and the long arm to (0.5, 1], so the centromere lands
// on exactly 0.5 and the two telomeres on exactly 0 and 1.
//
// The caller guarantees 0 < centromere < scLength; see [SampleSet.Validate].
func NormalizePosition(pos, centromere, scLength float64) float64 {
	if pos <= centromere {
		return pos / centromere / 2.0
	}
	return (pos-centromere)/(scLength-centromere)/2.0 + 0.5
}

// EffectiveWidth returns the part of the window of the given full width,
// centred at q, that lies inside [0, 1].
func EffectiveWidth(q, window float64) float64 {
	half := window / 2.0
	switch {
	case q < half:
		return q + half
	case q > 1.0-half:
		return 1.0 - q + half
	default:
		return window
	}
}

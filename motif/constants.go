package motif

//-----------------------------------------------------------------------------
// Tolerance Defaults
//-----------------------------------------------------------------------------

// DefaultWidenFactor multiplies an aspect's orb during the approximate
// fallback pass: nodes left over after the strict pass are re-searched
// with orb × DefaultWidenFactor direct angle checks.
const DefaultWidenFactor = 1.5

// DefaultDiagonalSlack is the extra tolerance, in degrees, granted to
// diagonal/secondary edges of composite shapes (Envelope and Mystic
// Rectangle diagonals). It never applies to a template's primary edges.
const DefaultDiagonalSlack = 0.75

//-----------------------------------------------------------------------------
// Template Arities
//-----------------------------------------------------------------------------

// trioSize, quadSize and quintSize name the subset sizes the motif
// templates enumerate, to avoid sprinkling literal 3/4/5 through the scans.
const (
	trioSize  = 3
	quadSize  = 4
	quintSize = 5
)

//-----------------------------------------------------------------------------
// Suppression Priorities
//   higher value = stronger; a suppressor needs priority >= its victim's.
//-----------------------------------------------------------------------------

const (
	// priorityUnnamed: the weakest tier, only ever removed, never kept.
	priorityUnnamed = 0
	// prioritySimple: the three-node motifs (Grand Trine, T-Square,
	// Wedge, Sextile Wedge) plus the Yod family.
	prioritySimple = 1
	// priorityComposite: the four/five-node composites (Envelope, Grand
	// Cross, Mystic Rectangle, Cradle, Kite).
	priorityComposite = 2
	// priorityLightning: Lightning Bolt outranks everything and is
	// additionally exempt from removal.
	priorityLightning = 3
)

// priorityOf maps a Kind onto the suppression ladder.
func priorityOf(k Kind) int {
	switch k {
	case LightningBolt:
		return priorityLightning
	case Envelope, GrandCross, MysticRectangle, Cradle, Kite:
		return priorityComposite
	case GrandTrine, TSquare, Wedge, SextileWedge, Yod, WideYod:
		return prioritySimple
	default:
		return priorityUnnamed
	}
}

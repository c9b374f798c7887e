package domain

// Rate units
const (
	SecondsPerMinute = 60.0
)

// Presentation defaults
const (
	DefaultRoundingDigits = 5
	FullPrecision         = -1
)

// DefaultRawResources lists items treated as tree leaves unless an extraction recipe exists
var DefaultRawResources = []string{
	"Bauxite",
	"Caterium Ore",
	"Coal",
	"Copper Ore",
	"Iron Ore",
	"Limestone",
	"Raw Quartz",
	"Sulfur",
	"Uranium",
	"Water",
	"Nitrogen Gas",
	"Crude Oil",
	"SAM",
}

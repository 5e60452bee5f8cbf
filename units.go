package formatter

// Unit is the suffix appended to a reduced magnitude.
type Unit string

const (
	UnitNone Unit = ""
	UnitKilo Unit = "K"
	UnitMega Unit = "M"
	UnitGiga Unit = "G"
	UnitTera Unit = "T"
	UnitPeta Unit = "P"
	UnitExa  Unit = "E"
)

// units is ordered by power of 1000: 1, 10^3, 10^6 ... 10^18
var units = []Unit{UnitNone, UnitKilo, UnitMega, UnitGiga, UnitTera, UnitPeta, UnitExa}

const unitStep = 1000

// NumberAndUnit divides n by 1000 while it stays strictly above 1000 and a larger
// unit is available. Exactly 1000 is left unreduced.
func NumberAndUnit(n float64) (float64, Unit) {
	idx := 0
	base := n
	for base > unitStep && idx < len(units)-1 {
		base = base / unitStep
		idx++
	}
	return base, units[idx]
}

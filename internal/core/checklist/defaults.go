package checklist

// DefaultChecklistSize is how many catalog entries make up the checklist of
// equipment that has no template configured yet.
const DefaultChecklistSize = 8

// Catalog is the site-wide library of check items, in priority order.
var Catalog = []string{
	"Safety: Emergency stop button functional",
	"Safety: Guards and covers in place",
	"Safety: Warning labels legible",
	"Electrical: Cables and plugs undamaged",
	"Electrical: Control panel indicators working",
	"Mechanical: No unusual noise or vibration",
	"Mechanical: Belts and chains tensioned",
	"Lubrication: Oil level within marks",
	"Lubrication: No visible leaks",
	"Hydraulics: Pressure within operating range",
	"Hydraulics: Hoses free of cracks",
	"Pneumatics: Air supply pressure normal",
	"Cooling: Coolant level adequate",
	"Cooling: Fans and vents unobstructed",
	"Cleanliness: Work area free of debris",
	"Cleanliness: Chips and swarf removed",
	"Tooling: Tools secured and undamaged",
	"Measurement: Gauges readable and calibrated",
	"Documentation: Operating log filled in",
	"Documentation: Previous shift remarks reviewed",
}

// DefaultEntries returns the first size entries of the catalog.
// A non-positive size falls back to DefaultChecklistSize.
func DefaultEntries(size int) []Entry {
	if size <= 0 {
		size = DefaultChecklistSize
	}
	if size > len(Catalog) {
		size = len(Catalog)
	}
	return ParseTemplate(Catalog[:size])
}

package levels

// Config describes which topic a worksheet number belongs to within a
// level. It is derived purely from static range tables: the same
// (level, worksheet) pair always yields the same Config.
type Config struct {
	// Topic is the display label for the worksheet band,
	// e.g. "Vertical Addition: 2-Digit Numbers".
	Topic string

	// Subtype keys the generator family's sub-generator,
	// e.g. "vert-add-2d". Generators fall back to a default when the
	// subtype is unrecognized, so new bands degrade gracefully.
	Subtype string

	// Difficulty is a 1-5 rating used for display and analytics.
	Difficulty int
}

// Band maps worksheet numbers up to and including Through to a Config.
type Band struct {
	Through int
	Config  Config
}

// rangeTables holds the per-level worksheet band tables. Bands are
// ordered by Through ascending; lookup takes the first band whose
// Through is >= the worksheet number.
var rangeTables = map[Level][]Band{
	Level4A: {
		{50, Config{"Counting Pictures", "count", 1}},
		{100, Config{"Number Table to 50", "number-table", 1}},
		{150, Config{"Writing Numbers to 100", "write-numbers", 1}},
		{200, Config{"Number Sequences to 100", "sequence", 2}},
	},
	Level3A: {
		{30, Config{"Numbers to 120", "sequence", 1}},
		{90, Config{"Adding 1", "add-1", 1}},
		{150, Config{"Adding 2", "add-2", 2}},
		{200, Config{"Adding 3", "add-3", 2}},
	},
	Level2A: {
		{40, Config{"Adding 4 and 5", "add-small", 2}},
		{100, Config{"Adding 6 through 8", "add-medium", 2}},
		{140, Config{"Adding 9 and 10", "add-large", 3}},
		{200, Config{"Subtracting 1 to 3", "sub-intro", 3}},
	},
	LevelA: {
		{80, Config{"Subtraction up to 10", "sub-basic", 2}},
		{140, Config{"Subtraction from Teens", "sub-teens", 3}},
		{200, Config{"Mixed Addition and Subtraction", "mixed-addsub", 3}},
	},
	LevelB: {
		{50, Config{"Vertical Addition: 2-Digit Numbers", "vert-add-2d", 2}},
		{100, Config{"Vertical Addition: 3-Digit Numbers", "vert-add-3d", 3}},
		{160, Config{"Vertical Subtraction: 2-Digit Numbers", "vert-sub-2d", 3}},
		{200, Config{"Vertical Subtraction: 3-Digit Numbers", "vert-sub-3d", 4}},
	},
	LevelC: {
		{70, Config{"Multiplication Tables", "times-tables", 2}},
		{120, Config{"Multiplying by 1-Digit Numbers", "mult-2d", 3}},
		{160, Config{"Basic Division", "div-basic", 3}},
		{200, Config{"Division with Remainders", "div-remainder", 4}},
	},
	LevelD: {
		{50, Config{"Long Multiplication", "long-mult", 3}},
		{110, Config{"Long Division", "long-div", 4}},
		{170, Config{"Reducing Fractions", "frac-reduce", 3}},
		{200, Config{"Improper Fractions and Mixed Numbers", "frac-improper", 4}},
	},
	LevelE: {
		{60, Config{"Adding Fractions", "frac-add", 3}},
		{110, Config{"Subtracting Fractions", "frac-sub", 4}},
		{160, Config{"Multiplying Fractions", "frac-mul", 4}},
		{200, Config{"Dividing Fractions", "frac-div", 5}},
	},
	LevelF: {
		{70, Config{"Mixed Fraction Calculations", "frac-mixed", 4}},
		{130, Config{"Decimal Calculations", "dec-arith", 4}},
		{170, Config{"Fractions and Decimals", "frac-dec", 5}},
		{200, Config{"Order of Operations", "order-ops", 5}},
	},
}

// Info resolves the worksheet Config for a level and worksheet number.
// It is a pure function: out-of-range worksheet numbers clamp to the
// nearest band and unknown levels resolve as LevelA, so Info always
// returns a usable Config.
func Info(level Level, worksheet int) Config {
	table, ok := rangeTables[level]
	if !ok {
		table = rangeTables[LevelA]
	}

	if worksheet < 1 {
		worksheet = 1
	}
	for _, b := range table {
		if worksheet <= b.Through {
			return b.Config
		}
	}
	// Past the last band: clamp to the final topic of the level.
	return table[len(table)-1].Config
}

// Bands returns the worksheet band table for a level in ascending
// order. Unknown levels resolve as LevelA, same as Info.
func Bands(level Level) []Band {
	table, ok := rangeTables[level]
	if !ok {
		table = rangeTables[LevelA]
	}
	out := make([]Band, len(table))
	copy(out, table)
	return out
}

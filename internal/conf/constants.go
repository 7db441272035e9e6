package conf

// DefaultKeysFile - Name of the keys file read when none is given
const DefaultKeysFile string = "37names.txt"

// DefaultTableSize - Number of slots in the simulated hash table when none is given
const DefaultTableSize int64 = 37

// DefaultFormat - Output format when none is given
const DefaultFormat string = FormatText

// FormatText - Output as one line per hash algorithm
const FormatText string = "text"

// FormatJSON - Output as a JSON array of results
const FormatJSON string = "json"

// MaxVerbosity - Highest log verbosity, 0 is info, 1 is debug and 2 is trace
const MaxVerbosity int = 2

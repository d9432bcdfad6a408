package gjhint

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Every GeoJSON file is valid
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (unknown flags, too many args)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitIOError        = 10 // Directory or file could not be read
	ExitInvalidJSON    = 11 // A file is not valid JSON
	ExitInvalidGeoJSON = 12 // A file is valid JSON but not valid GeoJSON
)

const (
	// GeoJSONExtension is the case-sensitive suffix a directory entry must carry
	// to be validated.
	GeoJSONExtension = ".geojson"

	// EncodingRaw requests file content exactly as stored on disk.
	EncodingRaw = ""

	// EncodingUTF8 is the encoding used when hinting files.
	EncodingUTF8 = "utf-8"

	// DefaultMaxPrecision is the number of decimal places a coordinate may carry
	// before the precision warning fires. Six decimals is roughly 10cm.
	DefaultMaxPrecision = 6

	// MaxIssuesShown caps the issues listed in an error message.
	MaxIssuesShown = 3
)

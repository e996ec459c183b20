package format

// Settings carries the format configuration consumed by the codec.
//
// The codec never owns a Settings value; callers pass it into each
// serialize/deserialize call and may share one value across calls on the
// same goroutine. The JSON and CSV sections are forwarded opaquely to the
// text-layer helpers.
type Settings struct {
	// CheckDataOverflow enables post-parse overflow checking for the
	// text-family formats. When false, integer parsing takes the unchecked
	// fast path and out-of-range literals produce wrapped values.
	CheckDataOverflow bool

	JSON JSONSettings
	CSV  CSVSettings
}

// JSONSettings controls JSON-specific number formatting.
type JSONSettings struct {
	// Quote64BitIntegers wraps integers of 64 bits and wider in double
	// quotes on output, for consumers that cannot represent them as JSON
	// numbers without precision loss.
	Quote64BitIntegers bool

	// QuoteDenormals emits NaN and infinities as quoted words ("nan",
	// "inf", "-inf") instead of the JSON literal null.
	QuoteDenormals bool
}

// CSVSettings controls CSV-specific parsing.
type CSVSettings struct {
	// Delimiter is the field separator expected by the surrounding CSV
	// reader. The numeric codec never consumes it; it only marks the end
	// of a number token.
	Delimiter byte
}

// DefaultSettings returns the default format settings: overflow checking
// enabled, plain JSON numbers, comma-delimited CSV.
func DefaultSettings() *Settings {
	return &Settings{
		CheckDataOverflow: true,
		CSV:               CSVSettings{Delimiter: ','},
	}
}

// Package banks holds the question banks compiled into the binary.
package banks

import _ "embed"

//go:embed genetics.json
var Genetics []byte

// DefaultName is the file name reported for the embedded bank.
const DefaultName = "genetics.json"

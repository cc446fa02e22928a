package sigdb

import "github.com/absoluteskid/fxputil-go/pkg/fxp"

// Seed table used when no signatures.json exists yet. Codes are the fxIDs
// the plugins themselves report.
var builtinSignatures = map[[4]byte]fxp.Entry{
	{'s', 'y', 'l', '1'}: {Name: "Sylenth1", Company: "LennarDigital"},
	{'X', 'f', 's', 'X'}: {Name: "Serum", Company: "Xfer Records"},
	{'S', 'p', 'i', 'r'}: {Name: "Spire", Company: "Reveal Sound"},
	{'N', 'I', '$', 'D'}: {Name: "Massive", Company: "Native Instruments"},
	{'h', 'i', 'V', 'e'}: {Name: "Hive", Company: "u-he"},
	{'d', 'l', 'V', '2'}: {Name: "Diva", Company: "u-he"},
}

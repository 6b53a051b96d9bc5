package config

// Requested output format.
// ENUM(text, yaml)
type OutputFmt int

// Order of palette entries on output.
// ENUM(document, natural)
type SortMode int

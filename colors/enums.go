package colors

// Color space channel values are expressed in.
// ENUM(RGB, HSL)
type Space int

// Textual encoding family of a color literal.
// ENUM(HEX, RGB, HSL)
type Format int

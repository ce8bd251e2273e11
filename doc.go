// Package ahcalc evaluates arithmetic written the way people actually type it.
//
// Input may use +, -, *, /, ^ (or **), postfix ! for factorial, and round or
// square brackets, nested to any depth. Whitespace and commas are ignored, so
// "1, 000 + 2" is 1002. Multiplication may be implied: "2(3+4)", "(2+3)4",
// and "(2+3)(4+5)" all work. A leading or post-operator minus negates the
// number or group that follows it.
//
// One deliberate quirk: repeated exponentiation groups left to right, so
// "2^3^2" is (2^3)^2 = 64 rather than 2^(3^2) = 512.
//
// Every call is a pure function of its input. Parsing and evaluation allocate
// only local data, so the package is safe for concurrent use without locking.
package ahcalc

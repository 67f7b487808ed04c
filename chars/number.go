package chars

import "github.com/dhamidi/combinate/parse"

// UIntegerS matches a run of decimal digits.
func UIntegerS() parse.Parser[string] {
	return parse.Or(Text(parse.Many1(Numeric())),
		parse.Fail[string]("Expected unsigned integer."))
}

// UInteger matches a run of decimal digits and produces its value.
func UInteger() parse.Parser[uint] {
	return parse.To[uint](UIntegerS())
}

// IntegerS matches a run of decimal digits with an optional leading minus.
func IntegerS() parse.Parser[string] {
	return parse.Or(parse.Or(parse.Sum(String("-"), UIntegerS()), UIntegerS()),
		parse.Fail[string]("Expected integer."))
}

// Integer matches a signed integer and produces its value.
func Integer() parse.Parser[int] {
	return parse.To[int](IntegerS())
}

// fraction matches a decimal point followed by at least one digit.
func fraction() parse.Parser[string] {
	return parse.Sum(String("."), UIntegerS())
}

// NumberS matches a decimal number: an optional minus, then digits with an
// optional fraction, or a fraction alone. A decimal point that is not
// followed by a digit is not part of the number, so "3." matches "3".
func NumberS() parse.Parser[string] {
	withInteger := parse.Sum(IntegerS(), parse.Or(fraction(), parse.Const("")))
	fractionOnly := parse.Sum(parse.Or(String("-"), parse.Const("")), fraction())
	return parse.Or(parse.Or(withInteger, fractionOnly), parse.Fail[string]("Expected number."))
}

// Number matches a decimal number and produces its value.
func Number() parse.Parser[float64] {
	return parse.To[float64](NumberS())
}

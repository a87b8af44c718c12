package currency

import "strings"

// Code defines a currency code such as BTC or JPY. Codes are always stored
// uppercase
type Code string

// Public currency codes used across the library
const (
	EMPTYCODE Code = ""
	BTC       Code = "BTC"
	ETH       Code = "ETH"
	JPY       Code = "JPY"
	USD       Code = "USD"
	EUR       Code = "EUR"
)

// NewCode returns an uppercased currency code from a raw exchange identifier
func NewCode(s string) Code {
	return Code(strings.ToUpper(s))
}

// String implements the stringer interface
func (c Code) String() string {
	return string(c)
}

// Lower returns the lowercase representation of the code
func (c Code) Lower() string {
	return strings.ToLower(string(c))
}

// IsEmpty returns true when the code is unset
func (c Code) IsEmpty() bool {
	return c == EMPTYCODE
}

// Equal checks two codes for case-insensitive equality
func (c Code) Equal(other Code) bool {
	return strings.EqualFold(string(c), string(other))
}

// Pair holds the base and quote currency codes of a trading pair
type Pair struct {
	Delimiter string
	Base      Code
	Quote     Code
}

// EMPTYPAIR is an empty pair
var EMPTYPAIR = Pair{}

// NewPair returns a pair from base and quote codes
func NewPair(base, quote Code) Pair {
	return Pair{Base: base, Quote: quote}
}

// NewPairWithDelimiter returns a pair from strings with a set delimiter
func NewPairWithDelimiter(base, quote, delimiter string) Pair {
	return Pair{Base: NewCode(base), Quote: NewCode(quote), Delimiter: delimiter}
}

// NewPairFromString converts a delimited string into a pair, e.g. BTC_JPY
func NewPairFromString(s, delimiter string) (Pair, error) {
	parts := strings.Split(s, delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return EMPTYPAIR, errInvalidPairString(s)
	}
	return Pair{Base: NewCode(parts[0]), Quote: NewCode(parts[1]), Delimiter: delimiter}, nil
}

// String implements the stringer interface
func (p Pair) String() string {
	return p.Base.String() + p.Delimiter + p.Quote.String()
}

// IsEmpty returns true when both codes are unset
func (p Pair) IsEmpty() bool {
	return p.Base.IsEmpty() && p.Quote.IsEmpty()
}

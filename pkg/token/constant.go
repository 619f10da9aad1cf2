package token

const (
	// ByteLength is the amount of randomness behind every token (160 bits).
	ByteLength = 20
	// Length is the length of the hex encoded token.
	Length = ByteLength * 2
)

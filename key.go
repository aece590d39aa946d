package pixveil

import (
	"strconv"
	"strings"
)

// keySeparator joins the password and the bit count in the out-of-band key.
const keySeparator = "_"

// FormatKey builds the out-of-band key the extracting party needs:
// the password and the embedded bit count joined by an underscore.
func FormatKey(password string, bitCount int) string {
	return password + keySeparator + strconv.Itoa(bitCount)
}

// ParseKey splits a key back into its password and bit count. The split is
// on the last underscore, so passwords containing underscores survive a
// Format/Parse round trip.
//
// TODO: a password that itself ends in _<digits> makes a hand-assembled key
// ambiguous; a length-prefixed key format would remove the ambiguity.
func ParseKey(key string) (password string, bitCount int, err error) {
	i := strings.LastIndex(key, keySeparator)
	if i < 0 {
		return "", 0, &BadKeyError{Key: key}
	}
	bitCount, err = strconv.Atoi(key[i+1:])
	if err != nil || bitCount < 0 {
		return "", 0, &BadKeyError{Key: key}
	}
	return key[:i], bitCount, nil
}

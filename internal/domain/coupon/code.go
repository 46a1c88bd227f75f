package coupon

import (
	"crypto/rand"
	"errors"
	"regexp"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

// Alphabet excludes visually confusable characters (0/O, 1/I/L).
const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 10
)

var couponCodeRegex = regexp.MustCompile("^[" + codeAlphabet + "]{10}$")

type Code string

// GenerateCode draws each character independently; uniqueness across the
// system is the store constraint's job, not ours.
func GenerateCode() (Code, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return Code(buf), nil
}

func NewCode(code string) (Code, error) {
	if !couponCodeRegex.MatchString(code) {
		return "", ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

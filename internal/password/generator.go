package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	sentinelErrors "github.com/graexlabs/sentinel-cli/internal/shared/errors"
)

// Character pools per class. The special pool matches the 32-character
// alphabet assumed by the entropy estimate.
const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	specialChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Generation length bounds. Out-of-range requests clamp rather than error.
const (
	MinGeneratedLength = 12
	MaxGeneratedLength = 32
	DefaultLength      = 16
)

// CharsetConfig selects which character classes a generated password draws
// from. At least one class must be enabled.
type CharsetConfig struct {
	Lower   bool
	Upper   bool
	Digits  bool
	Special bool
	Length  int
}

// DefaultCharsetConfig enables every character class at the default length.
func DefaultCharsetConfig() CharsetConfig {
	return CharsetConfig{
		Lower:   true,
		Upper:   true,
		Digits:  true,
		Special: true,
		Length:  DefaultLength,
	}
}

func (c CharsetConfig) pools() []string {
	var pools []string
	if c.Lower {
		pools = append(pools, lowerChars)
	}
	if c.Upper {
		pools = append(pools, upperChars)
	}
	if c.Digits {
		pools = append(pools, digitChars)
	}
	if c.Special {
		pools = append(pools, specialChars)
	}
	return pools
}

func (c CharsetConfig) clampedLength() int {
	switch {
	case c.Length < MinGeneratedLength:
		return MinGeneratedLength
	case c.Length > MaxGeneratedLength:
		return MaxGeneratedLength
	default:
		return c.Length
	}
}

// Generate produces a random password drawing from the enabled character
// classes, guaranteeing at least one character from each. It returns
// ErrNoCharacterClasses when the configuration enables none.
func Generate(cfg CharsetConfig) (string, error) {
	pools := cfg.pools()
	if len(pools) == 0 {
		return "", sentinelErrors.ErrNoCharacterClasses
	}

	length := cfg.clampedLength()
	combined := strings.Join(pools, "")
	out := make([]byte, 0, length)

	// One character from every enabled class so short passwords still
	// exercise the full requested alphabet.
	for _, pool := range pools {
		ch, err := randomByte(pool)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}
	for len(out) < length {
		ch, err := randomByte(combined)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func randomByte(pool string) (byte, error) {
	idx, err := randomInt(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[idx], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand so the
// guaranteed class characters do not cluster at the front.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random source: %w", err)
	}
	return int(v.Int64()), nil
}

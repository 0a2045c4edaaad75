package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"
)

const (
	prefixLength = 4
	fallbackBase = "QWER"

	counterMin = 1000
	counterMax = 9999

	sizeSKUAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	sizeSKULength   = 6
)

var ErrInvalidPrefix = errors.New("SKU prefix must be exactly 4 letters")

// Rand is the randomness used for SKU suffixes and the counter start.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// SKUChecker reports whether a product already holds a SKU.
type SKUChecker interface {
	ProductSKUExists(ctx context.Context, sku string) (bool, error)
}

// BlankSKU builds the preview SKU shown while a blank item is being entered:
// up to three letters of the uppercased name, a dash and three random digits.
// It is not unique. An item name without letters yields "".
func BlankSKU(name string) string {
	return blankSKU(name, globalRand{})
}

func blankSKU(name string, rnd Rand) string {
	prefix := make([]rune, 0, 3)
	for _, r := range strings.ToUpper(name) {
		if !unicode.IsLetter(r) {
			continue
		}
		prefix = append(prefix, r)
		if len(prefix) == 3 {
			break
		}
	}
	if len(prefix) == 0 {
		return ""
	}
	return fmt.Sprintf("%s-%03d", string(prefix), rnd.IntN(1000))
}

// ValidatePrefix checks a final SKU prefix.
func ValidatePrefix(prefix string) error {
	runes := []rune(prefix)
	if len(runes) != prefixLength {
		return ErrInvalidPrefix
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return ErrInvalidPrefix
		}
	}
	return nil
}

// FinalSKU is the persisted SKU of a new blank product: PREFIX-NNNN where
// NNNN is the current product count plus one.
func FinalSKU(prefix string, count int) (string, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%04d", strings.ToUpper(prefix), count+1), nil
}

// SizeSKU builds the per-size code stored next to each size of a blank, e.g.
// "s-7KQ2ZD" for Small.
func SizeSKU(size string) string {
	return sizeSKU(size, globalRand{})
}

func sizeSKU(size string, rnd Rand) string {
	var b strings.Builder
	if size != "" {
		b.WriteString(strings.ToLower(size[:1]))
		b.WriteByte('-')
	}
	for i := 0; i < sizeSKULength; i++ {
		b.WriteByte(sizeSKUAlphabet[rnd.IntN(len(sizeSKUAlphabet))])
	}
	return b.String()
}

// SKUBase derives the leading segment of a generated SKU from its parent SKU:
// everything before the first '-', which may be empty.
func SKUBase(parentSKU string) string {
	parentSKU = strings.TrimSpace(parentSKU)
	if i := strings.Index(parentSKU, "-"); i >= 0 {
		return strings.ToUpper(parentSKU[:i])
	}
	if len([]rune(parentSKU)) >= prefixLength {
		return strings.ToUpper(string([]rune(parentSKU)[:prefixLength]))
	}
	return fallbackBase
}

// NewVersionSKU finds the SKU for a new version of a product whose SKU is
// already referenced by generated products. Numbering starts at count+1 and
// moves up until no product holds the candidate.
func NewVersionSKU(ctx context.Context, parentSKU string, count int, checker SKUChecker) (string, error) {
	base := SKUBase(parentSKU)
	for n := count + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%04d", base, n)
		taken, err := checker.ProductSKUExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check SKU %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Issuer hands out the numeric part of generated SKUs. The first number is
// random in [1000, 9999]; every later call moves up by one and wraps to 1000,
// at which point the used set is cleared.
type Issuer struct {
	mu      sync.Mutex
	rnd     Rand
	started bool
	seq     int
	used    map[int]struct{}
}

// NewIssuer returns an issuer. A nil rnd uses the package random source.
func NewIssuer(rnd Rand) *Issuer {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Issuer{rnd: rnd, used: make(map[int]struct{})}
}

// Next returns the next free number. With displayOnly the number is released
// immediately so showing a preview does not consume it.
func (i *Issuer) Next(displayOnly bool) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.started {
		i.started = true
		i.seq = counterMin + i.rnd.IntN(counterMax-counterMin+1)
	} else {
		i.advance()
	}
	for {
		if _, taken := i.used[i.seq]; !taken {
			break
		}
		i.advance()
	}

	if !displayOnly {
		i.used[i.seq] = struct{}{}
	}
	return i.seq
}

func (i *Issuer) advance() {
	i.seq++
	if i.seq > counterMax {
		i.seq = counterMin
		i.used = make(map[int]struct{})
	}
}

// Reset forgets the counter position and every used number.
func (i *Issuer) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.started = false
	i.seq = 0
	i.used = make(map[int]struct{})
}

// GeneratedSKU formats BASE-NNNN[-SIZE][-COLOR] for one design variant.
func (i *Issuer) GeneratedSKU(parentSKU, size, color string, displayOnly bool) string {
	parts := []string{SKUBase(parentSKU), fmt.Sprintf("%04d", i.Next(displayOnly))}
	if code := SizeCode(size); code != "" {
		parts = append(parts, code)
	}
	if color != "" {
		parts = append(parts, color)
	}
	return strings.Join(parts, "-")
}

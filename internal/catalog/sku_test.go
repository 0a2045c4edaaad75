package catalog_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/catalog"
)

type fixedRand struct{ n int }

func (f fixedRand) IntN(n int) int {
	if f.n >= n {
		return n - 1
	}
	return f.n
}

type takenSKUs map[string]bool

func (s takenSKUs) ProductSKUExists(ctx context.Context, sku string) (bool, error) {
	return s[sku], nil
}

func TestBlankSKU(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{1,3}-\d{3}$`)
	for _, name := range []string{"Classic Tee", "ab", "x", "  hood ie  ", "Crew Neck Sweatshirt"} {
		sku := catalog.BlankSKU(name)
		assert.Regexp(t, pattern, sku, name)
	}

	assert.Regexp(t, `^HOO-\d{3}$`, catalog.BlankSKU("  hood ie"))
	assert.Regexp(t, `^TEE-\d{3}$`, catalog.BlankSKU("t3e e"))
	assert.Equal(t, "", catalog.BlankSKU("  12 "))
}

func TestFinalSKU(t *testing.T) {
	sku, err := catalog.FinalSKU("mock", 0)
	require.NoError(t, err)
	assert.Equal(t, "MOCK-0001", sku)

	sku, err = catalog.FinalSKU("Tees", 41)
	require.NoError(t, err)
	assert.Equal(t, "TEES-0042", sku)

	for _, prefix := range []string{"", "ab", "toolong", "ab1c", "a-bc"} {
		_, err := catalog.FinalSKU(prefix, 3)
		assert.ErrorIs(t, err, catalog.ErrInvalidPrefix, prefix)
	}
}

func TestSizeSKU(t *testing.T) {
	assert.Regexp(t, `^s-[A-Z0-9]{6}$`, catalog.SizeSKU("Small"))
	assert.Regexp(t, `^x-[A-Z0-9]{6}$`, catalog.SizeSKU("XX-Large"))
}

func TestSKUBase(t *testing.T) {
	assert.Equal(t, "ABCD", catalog.SKUBase("abcd-0001"))
	assert.Equal(t, "TEES", catalog.SKUBase("teeshirt"))
	assert.Equal(t, "QWER", catalog.SKUBase("ab"))
	assert.Equal(t, "QWER", catalog.SKUBase(""))
	assert.Equal(t, "", catalog.SKUBase("-0001"))
	assert.Equal(t, "", catalog.SKUBase(" -XL"))
}

func TestIssuer_GeneratedSKU(t *testing.T) {
	issuer := catalog.NewIssuer(nil)
	sku := issuer.GeneratedSKU("ABCD-0001", "XX-Large", "Black", false)
	assert.Regexp(t, `^ABCD-\d{4}-XX-Black$`, sku)

	sku = issuer.GeneratedSKU("", "", "", false)
	assert.Regexp(t, `^QWER-\d{4}$`, sku)

	sku = issuer.GeneratedSKU("TEES-0003", "Medium", "", true)
	assert.Regexp(t, `^TEES-\d{4}-M$`, sku)
}

func TestIssuer_SequentialUntilWrap(t *testing.T) {
	issuer := catalog.NewIssuer(fixedRand{n: 0})

	seen := make(map[int]bool)
	for i := 0; i < 9000; i++ {
		n := issuer.Next(false)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
		assert.False(t, seen[n], "number %d repeated before wrap", n)
		seen[n] = true
	}

	// 1000..9999 are exhausted; the next call wraps and starts over.
	assert.Equal(t, 1000, issuer.Next(false))
	assert.Equal(t, 1001, issuer.Next(false))
}

func TestIssuer_StartsRandomAndWraps(t *testing.T) {
	issuer := catalog.NewIssuer(fixedRand{n: 8998})
	assert.Equal(t, 9998, issuer.Next(false))
	assert.Equal(t, 9999, issuer.Next(false))
	assert.Equal(t, 1000, issuer.Next(false))
}

func TestIssuer_Reset(t *testing.T) {
	issuer := catalog.NewIssuer(fixedRand{n: 10})
	assert.Equal(t, 1010, issuer.Next(true))
	assert.Equal(t, 1011, issuer.Next(false))

	issuer.Reset()
	assert.Equal(t, 1010, issuer.Next(false))
}

func TestNewVersionSKU(t *testing.T) {
	taken := takenSKUs{"ABCD-0005": true, "ABCD-0006": true}

	sku, err := catalog.NewVersionSKU(context.Background(), "ABCD-0001", 4, taken)
	require.NoError(t, err)
	assert.Equal(t, "ABCD-0007", sku)

	sku, err = catalog.NewVersionSKU(context.Background(), "ABCD-0001", 10, taken)
	require.NoError(t, err)
	assert.Equal(t, "ABCD-0011", sku)
}

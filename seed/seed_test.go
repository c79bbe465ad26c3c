package seed

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromToken_KnownDigest(t *testing.T) {
	// SHA3-256("") from FIPS 202 test vectors
	assert.Equal(t,
		"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		FromToken("").String())
	// SHA3-256("abc")
	assert.Equal(t,
		"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		FromToken("abc").String())
}

func TestFromToken_Deterministic(t *testing.T) {
	assert.Equal(t, FromToken("test-token"), FromToken("test-token"))
	assert.NotEqual(t, FromToken("test-token"), FromToken("test-token2"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, FromToken("run-7"), Resolve("run-7"))

	a, b := Resolve(""), Resolve("")
	assert.NotEqual(t, a, b, "entropy branch should not repeat")
}

func TestParseHex_RoundTrip(t *testing.T) {
	s := FromToken("replay")
	got, err := ParseHex(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"zz", "abcd", ""} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrInvalidSeed, in)
	}
}

func TestSource_MemoizesOnce(t *testing.T) {
	src := NewSource("")
	assert.False(t, src.Deterministic())

	first := src.Seed()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, first, src.Seed())
		}()
	}
	wg.Wait()
}

func TestSource_Token(t *testing.T) {
	src := NewSource("test-token")
	assert.True(t, src.Deterministic())
	assert.Equal(t, "test-token", src.Token())
	assert.Equal(t, FromToken("test-token"), src.Seed())
}

func TestFromBuild_PrefersBuildToken(t *testing.T) {
	saved := BuildToken
	defer func() { BuildToken = saved }()

	BuildToken = ""
	assert.Equal(t, FromToken("env"), FromBuild("env").Seed())

	BuildToken = "linker"
	src := FromBuild("env")
	assert.Equal(t, "linker", src.Token())
	assert.Equal(t, FromToken("linker"), src.Seed())
}

func TestFixed(t *testing.T) {
	s := FromToken("fixed")
	src := Fixed(s)
	assert.Equal(t, s, src.Seed())
	assert.True(t, src.Deterministic())
	assert.Empty(t, src.Token())
}

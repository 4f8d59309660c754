package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestPhoneCipher_RoundTrip(t *testing.T) {
	c, err := NewPhoneCipher(testKey(t))
	require.NoError(t, err)

	for _, phone := range []string{"+201001234567", "01234567890", "+49 170 1234567"} {
		stored, err := c.Encrypt(phone)
		require.NoError(t, err)
		require.Contains(t, stored, ":")

		plain, err := c.Decrypt(stored)
		require.NoError(t, err)
		require.Equal(t, phone, plain)
	}
}

func TestPhoneCipher_FreshIVPerCall(t *testing.T) {
	c, err := NewPhoneCipher(testKey(t))
	require.NoError(t, err)

	first, err := c.Encrypt("+201001234567")
	require.NoError(t, err)
	second, err := c.Encrypt("+201001234567")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.NotEqual(t, strings.SplitN(first, ":", 2)[0], strings.SplitN(second, ":", 2)[0])
}

func TestPhoneCipher_MalformedInput(t *testing.T) {
	c, err := NewPhoneCipher(testKey(t))
	require.NoError(t, err)

	for _, stored := range []string{"", "no-separator", "zz:zz", "abcd:ef01", "abcd123:"} {
		_, err := c.Decrypt(stored)
		require.ErrorIs(t, err, apperr.ErrCrypto, "input %q", stored)
	}
}

func TestPhoneCipher_WrongKey(t *testing.T) {
	c1, err := NewPhoneCipher(testKey(t))
	require.NoError(t, err)

	other := testKey(t)
	other[0] ^= 0xff
	c2, err := NewPhoneCipher(other)
	require.NoError(t, err)

	stored, err := c1.Encrypt("+201001234567")
	require.NoError(t, err)

	_, err = c2.Decrypt(stored)
	require.ErrorIs(t, err, apperr.ErrCrypto)
}

func TestPhoneCipher_BadKeyLength(t *testing.T) {
	_, err := NewPhoneCipher([]byte("short"))
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword("s3cret-pass", hash))
	require.False(t, CheckPassword("wrong-pass", hash))
	require.False(t, CheckPassword("s3cret-pass", "not-a-hash"))
}

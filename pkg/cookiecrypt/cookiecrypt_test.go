package cookiecrypt

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestNewCodecKeySize(t *testing.T) {
	_, err := NewCodec("too-short", false)
	assert.Error(t, err)

	_, err = NewCodec(testKey, false)
	assert.NoError(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	c, err := NewCodec(testKey, false)
	require.NoError(t, err)

	cases := []string{
		"",
		"plain ascii",
		`{"name":"Núria","surname":"Vilà"}`,
		"àéïòú çñ 汉字 🥅",
		strings.Repeat("x", 4096),
	}

	for _, plaintext := range cases {
		encrypted, err := c.Encrypt([]byte(plaintext))
		require.NoError(t, err)

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, string(decrypted))
	}
}

func TestDecryptGarbage(t *testing.T) {
	c, err := NewCodec(testKey, false)
	require.NoError(t, err)

	for _, encoded := range []string{"", "not base64!!", "YWJj"} {
		_, err := c.Decrypt(encoded)
		assert.ErrorIs(t, err, ErrInvalidCiphertext)
	}
}

func TestDecryptWrongKey(t *testing.T) {
	a, err := NewCodec(testKey, false)
	require.NoError(t, err)

	b, err := NewCodec("fedcba9876543210fedcba9876543210", false)
	require.NoError(t, err)

	encrypted, err := a.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = b.Decrypt(encrypted)
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestCookieRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewCodec(testKey, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(w)
	gc.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	require.NoError(t, c.SetCookie(gc, "draft", "some-signed-token", 7200))

	res := w.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.NotEqual(t, "some-signed-token", cookies[0].Value)

	w2 := httptest.NewRecorder()
	gc2, _ := gin.CreateTestContext(w2)
	gc2.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	gc2.Request.AddCookie(cookies[0])

	value, err := c.Cookie(gc2, "draft")
	require.NoError(t, err)
	assert.Equal(t, "some-signed-token", value)
}

func TestCookieAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewCodec(testKey, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	gc, _ := gin.CreateTestContext(w)
	gc.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	_, err = c.Cookie(gc, "draft")
	assert.ErrorIs(t, err, ErrCookieNotFound)
}

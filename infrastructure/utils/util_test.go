package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(map[string]interface{}{"fid": int64(3621)}, "secret")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.EqualValues(t, 3621, claims["fid"])
}

func TestGenerateJobID(t *testing.T) {
	pattern := regexp.MustCompile(`^job_\d+_[0-9a-f]{9}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateJobID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestParseStringList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Go, PostgreSQL, Docker", []string{"Go", "PostgreSQL", "Docker"}},
		{"Go\nPostgreSQL\nDocker", []string{"Go", "PostgreSQL", "Docker"}},
		{"  Go ,\n , PostgreSQL  ", []string{"Go", "PostgreSQL"}},
		{",,,\n\n", []string{}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseStringList(tc.in), "input %q", tc.in)
	}
}

func TestFormatSalary(t *testing.T) {
	assert.Equal(t, "Salary not specified", FormatSalary(0, 0, "USD"))
	assert.Equal(t, "$150,000 - $200,000", FormatSalary(150000, 200000, "USD"))
	assert.Equal(t, "$150,000+", FormatSalary(150000, 0, "USD"))
	assert.Equal(t, "Up to $90,000", FormatSalary(0, 90000, "USD"))
	assert.Equal(t, "€80,000 - €95,000", FormatSalary(80000, 95000, "EUR"))
	assert.Equal(t, "2 ETH - 3 ETH", FormatSalary(2, 3, "ETH"))
	assert.Equal(t, "$120,000+", FormatSalary(120000, 120000, "USD"))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "now", FormatRelativeTime(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", FormatRelativeTime(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", FormatRelativeTime(now.Add(-3*time.Hour)))
	assert.Equal(t, "2d ago", FormatRelativeTime(now.Add(-48*time.Hour)))
}

func TestFormatJobType(t *testing.T) {
	assert.Equal(t, "Full Time", FormatJobType("full-time"))
	assert.Equal(t, "Contract", FormatJobType("contract"))
	assert.Equal(t, "Internship", FormatJobType("internship"))
}

func TestFormatEthAmount(t *testing.T) {
	assert.Equal(t, "0.01 ETH", FormatEthAmount("10000000000000000"))
	assert.Equal(t, "0.05 ETH", FormatEthAmount("50000000000000000"))
	assert.Equal(t, "1 ETH", FormatEthAmount("1000000000000000000"))
	assert.Equal(t, "0 ETH", FormatEthAmount("0"))
	assert.Equal(t, "0 ETH", FormatEthAmount("not-a-number"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "long te...", TruncateText("long text here", 7))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://example.com/jobs"))
	assert.True(t, IsValidURL("http://localhost:3000"))
	assert.False(t, IsValidURL("not a url"))
	assert.False(t, IsValidURL("/relative/path"))
	assert.False(t, IsValidURL("example.com"))
}

func TestCreateShareText(t *testing.T) {
	text := CreateShareText("Backend Engineer", "Jobcast Labs")
	assert.True(t, strings.Contains(text, "Backend Engineer"))
	assert.True(t, strings.Contains(text, "Jobcast Labs"))
}

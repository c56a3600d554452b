package utils

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"jobcast/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	var claims jwt.MapClaims = payload
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generate token")
		return "", err
	}
	return tokenString, nil
}

// GenerateJobID returns a unique job identifier in the job_<ts>_<suffix> form.
func GenerateJobID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("job_%d_%s", time.Now().UnixMilli(), suffix)
}

// ParseStringList splits free text on commas and newlines into a list of
// trimmed, non-empty items.
func ParseStringList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatSalary renders a salary range like "$150,000 - $200,000" or "$150,000+".
func FormatSalary(min, max int64, currency string) string {
	if min == 0 && max == 0 {
		return "Salary not specified"
	}
	if currency == "" {
		currency = "USD"
	}
	format := func(v int64) string {
		if sym, ok := currencySymbols[currency]; ok {
			return sym + groupDigits(v)
		}
		return fmt.Sprintf("%s %s", groupDigits(v), currency)
	}
	switch {
	case min > 0 && max > 0 && min != max:
		return fmt.Sprintf("%s - %s", format(min), format(max))
	case min > 0:
		return format(min) + "+"
	default:
		return "Up to " + format(max)
	}
}

func groupDigits(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatRelativeTime renders "now", "5m ago", "3h ago", "2d ago", then a date.
func FormatRelativeTime(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < time.Minute:
		return "now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 365*24*time.Hour:
		return t.Format("Jan 2")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// FormatJobType turns "full-time" into "Full Time".
func FormatJobType(jobType string) string {
	words := strings.Split(jobType, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatEthAmount renders a wei amount as ETH, e.g. "0.01 ETH".
func FormatEthAmount(wei string) string {
	v, ok := new(big.Rat).SetString(wei)
	if !ok {
		return "0 ETH"
	}
	eth := new(big.Rat).Quo(v, big.NewRat(1e18, 1))
	s := eth.FloatString(18)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		s = "0"
	}
	return s + " ETH"
}

func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}

func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// CreateShareText builds the cast text used when sharing a job listing.
func CreateShareText(title, company string) string {
	return fmt.Sprintf("🚀 %s at %s\n\nCheck out this job opportunity on Farcaster Jobs!", title, company)
}

package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SecretTag is the struct tag value that marks a field for redaction:
//
//	Password string `masq:"secret"`
const SecretTag = "secret"

// SensitiveFields is the set of attribute and struct field names whose values
// are always redacted, whatever their type.
var SensitiveFields = []string{
	"password",
	"Password",
	"secret",
	"token",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// passwordInlinePattern matches inline "password=<value>" or "pwd:<value>"
// patterns that may appear in arbitrary string fields.
var passwordInlinePattern = regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]\s*\S+`)

// fixedRedactOptions is the number of masq options beyond the
// SensitiveFields set (1 tag + 2 prefixes + 3 regexes).
const fixedRedactOptions = 6

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name and struct tag for known
// sensitive fields and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithTag(SecretTag),

		// Prefix-based redaction for variations like "password_hash".
		masq.WithFieldPrefix("password_"),
		masq.WithFieldPrefix("secret_"),

		// Regex-based defense-in-depth for raw sensitive values.
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(passwordInlinePattern),
	)

	return masq.New(opts...)
}

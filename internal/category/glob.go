package category

import (
	"regexp"
	"strings"
)

// GlobMatch tests value against an fnmatch-style glob: `*` matches any run
// of characters, `?` matches any single character, and `[seq]` matches a
// character class (with `!` negating it). Unlike path globs, `*` and `?`
// cross `/`, so "*.mov" matches a full file path. An unclosed `[` is taken
// literally. GlobMatch never fails; a pattern that cannot be translated
// simply matches nothing.
func GlobMatch(pattern, value string) bool {
	re, err := regexp.Compile(translateGlob(pattern))
	if err != nil {
		return false
	}
	return re.MatchString(value)
}

// translateGlob converts a glob into an anchored regular expression.
func translateGlob(pattern string) string {
	var sb strings.Builder
	sb.WriteString(`\A`)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				sb.WriteString(`\[`)
				continue
			}
			class := string(runes[i+1 : j])
			class = strings.ReplaceAll(class, `\`, `\\`)
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			} else if strings.HasPrefix(class, "^") {
				class = `\` + class
			}
			sb.WriteString("[" + class + "]")
			i = j
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString(`\z`)
	return sb.String()
}

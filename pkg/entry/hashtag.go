package entry

import "regexp"

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags returns every distinct '#word' token in text, in order of
// first occurrence. Word characters are ASCII letters, digits and underscore,
// so "#café" yields "#caf".
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tags = append(tags, m)
	}
	return tags
}

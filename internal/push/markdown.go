package push

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"bilifeed/internal/search"
)

const coverProxyPrefix = "https://images.weserv.nl/?url="

// BuildDigest renders records as a PushPlus markdown digest, appending video
// blocks until the next one would cross maxChars. Covers go through the
// weserv image proxy, hotlinked hdslb URLs are blocked in most mail and IM
// clients.
func BuildDigest(records []*search.VideoRecord, maxChars int) string {
	var b strings.Builder
	header := "## 🎬 近期精选视频\n\n"
	b.WriteString(header)
	total := utf8.RuneCountInString(header)

	for i, v := range records {
		lines := []string{
			fmt.Sprintf("### %d. [%s](%s)", i+1, v.Title, v.URL()),
		}
		if proxy := ProxyCoverURL(v.Cover); proxy != "" {
			lines = append(lines, fmt.Sprintf("![封面图](%s)", proxy))
		}
		lines = append(lines,
			fmt.Sprintf("- ▶️ %s　👍 %s　💾 %s", v.Play, v.Like, v.Favorites),
			fmt.Sprintf("- UP：%s", v.Author),
			"---",
		)
		block := strings.Join(lines, "\n") + "\n\n"

		size := utf8.RuneCountInString(block)
		if maxChars > 0 && total+size > maxChars {
			break
		}
		b.WriteString(block)
		total += size
	}
	return b.String()
}

// ProxyCoverURL rewrites a cover URL to go through the image proxy. The
// scheme is dropped, weserv takes a bare host path.
func ProxyCoverURL(cover string) string {
	cover = search.NormalizeCoverURL(cover)
	if cover == "" {
		return ""
	}
	return coverProxyPrefix + url.QueryEscape(strings.TrimPrefix(cover, "https://"))
}

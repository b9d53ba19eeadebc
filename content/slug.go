package content

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxSlugLength slug 的最大长度，超过时在连字符处截断
const MaxSlugLength = 80

// Slugify 生成 URL slug，按土耳其语规则转写（ç→c, ğ→g, ı→i, ş→s ...）。
func Slugify(s string) string {
	out := slug.MakeLang(s, "tr")
	if len(out) <= MaxSlugLength {
		return out
	}
	out = out[:MaxSlugLength]
	if i := strings.LastIndex(out, "-"); i > 0 {
		out = out[:i]
	}
	return strings.Trim(out, "-")
}

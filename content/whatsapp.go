package content

import (
	"net/url"
	"strings"
	"unicode"
)

// WhatsAppLink 生成 wa.me 点击聊天链接；号码只保留数字，text 为空时不带参数。
func WhatsAppLink(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)

	link := "https://wa.me/" + digits
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ReplyGreeting 询盘回复的默认开场白
func ReplyGreeting(name, subject string) string {
	var sb strings.Builder
	sb.WriteString("Merhaba")
	if name != "" {
		sb.WriteString(" " + name)
	}
	sb.WriteString(",")
	if subject != "" {
		sb.WriteString(` "` + subject + `" konulu`)
	}
	sb.WriteString(" mesajınız için teşekkür ederiz.")
	return sb.String()
}

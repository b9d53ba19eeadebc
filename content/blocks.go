package content

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// 支持的内容块类型
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockImage     = "image"
	BlockQuote     = "quote"
	BlockFAQ       = "faq"
)

// Block 后台编辑器提交的单个内容块，不同类型使用不同字段。
type Block struct {
	Type     string   `json:"type"`
	Content  string   `json:"content,omitempty"`
	Level    int      `json:"level,omitempty"`   // heading: 2-4
	Ordered  bool     `json:"ordered,omitempty"` // list
	Items    []string `json:"items,omitempty"`   // list
	Src      string   `json:"src,omitempty"`     // image
	Alt      string   `json:"alt,omitempty"`     // image
	Caption  string   `json:"caption,omitempty"` // image
	Author   string   `json:"author,omitempty"`  // quote
	Question string   `json:"question,omitempty"`
	Answer   string   `json:"answer,omitempty"`
}

// ParseBlocks 解析内容块 JSON 数组。
func ParseBlocks(raw []byte) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("解析内容块 JSON 失败: %w", err)
	}
	return blocks, nil
}

// BlocksToHTML 将内容块 JSON 转换为 HTML，每个块占一行。
func BlocksToHTML(raw []byte) (string, error) {
	blocks, err := ParseBlocks(raw)
	if err != nil {
		return "", err
	}
	return RenderBlocks(blocks), nil
}

// RenderBlocks 渲染已解析的内容块。所有文本都会做 HTML 转义，未知类型按段落输出。
func RenderBlocks(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b))
	}
	return strings.Join(parts, "\n")
}

func renderBlock(b Block) string {
	esc := html.EscapeString
	switch b.Type {
	case BlockHeading:
		level := b.Level
		if level < 2 || level > 4 {
			level = 2
		}
		return fmt.Sprintf("<h%d>%s</h%d>", level, esc(b.Content), level)
	case BlockParagraph:
		return "<p>" + esc(b.Content) + "</p>"
	case BlockList:
		tag := "ul"
		if b.Ordered {
			tag = "ol"
		}
		var sb strings.Builder
		sb.WriteString("<" + tag + ">")
		for _, item := range b.Items {
			sb.WriteString("<li>" + esc(item) + "</li>")
		}
		sb.WriteString("</" + tag + ">")
		return sb.String()
	case BlockImage:
		var sb strings.Builder
		sb.WriteString(`<figure><img src="` + esc(b.Src) + `" alt="` + esc(b.Alt) + `" loading="lazy">`)
		if b.Caption != "" {
			sb.WriteString("<figcaption>" + esc(b.Caption) + "</figcaption>")
		}
		sb.WriteString("</figure>")
		return sb.String()
	case BlockQuote:
		var sb strings.Builder
		sb.WriteString("<blockquote><p>" + esc(b.Content) + "</p>")
		if b.Author != "" {
			sb.WriteString("<cite>" + esc(b.Author) + "</cite>")
		}
		sb.WriteString("</blockquote>")
		return sb.String()
	case BlockFAQ:
		return `<div class="faq-item"><h3>` + esc(b.Question) + "</h3><p>" + esc(b.Answer) + "</p></div>"
	default:
		return "<p>" + esc(b.Content) + "</p>"
	}
}

package service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Single-font text layout on US Letter pages.
const (
	paperSize    = "Letter"
	pageMargin   = 50
	fontName     = "Helvetica"
	fontSize     = 10
	linesPerPage = 50
	wrapWidth    = 95
)

// Page description understood by pdfcpu's JSON import.
type layoutDoc struct {
	Paper string                `json:"paper"`
	Pages map[string]layoutPage `json:"pages"`
}

type layoutPage struct {
	Content layoutContent `json:"content"`
}

type layoutContent struct {
	Text []layoutText `json:"text"`
}

type layoutText struct {
	Value  string       `json:"value"`
	Anchor string       `json:"anchor"`
	Font   layoutFont   `json:"font"`
	Margin layoutMargin `json:"margin"`
}

type layoutFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type layoutMargin struct {
	Width float64 `json:"width"`
}

// renderTextPDF lays lines out on as many pages as needed, one text column
// per page anchored at the top left, in the core Helvetica font.
func renderTextPDF(lines []string) ([]byte, error) {
	pages := paginate(wrapLines(lines))

	doc := layoutDoc{
		Paper: paperSize,
		Pages: make(map[string]layoutPage, len(pages)),
	}
	for i, page := range pages {
		doc.Pages[strconv.Itoa(i+1)] = layoutPage{
			Content: layoutContent{
				Text: []layoutText{{
					Value:  pageText(page),
					Anchor: "topleft",
					Font:   layoutFont{Name: fontName, Size: fontSize},
					Margin: layoutMargin{Width: pageMargin},
				}},
			},
		}
	}

	layout, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode page layout: %w", err)
	}

	var out bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(layout), &out, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return out.Bytes(), nil
}

// pageText joins the lines of a page into one text value. pdfcpu expands
// %p, %P, %t and %v in text values, so percent signs are doubled. The
// narrow no-break space of French digit grouping has no WinAnsi code and
// becomes a regular no-break space.
func pageText(lines []string) string {
	text := strings.Join(lines, "\n")
	text = strings.ReplaceAll(text, "%", "%%")
	return strings.ReplaceAll(text, "\u202f", "\u00a0")
}

// wrapLines breaks long lines on spaces. Continuation lines of a bullet are
// indented so they are not read as new bullets.
func wrapLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		indent := ""
		if strings.HasPrefix(line, "- ") {
			indent = "  "
		}

		for utf8.RuneCountInString(line) > wrapWidth {
			cut := breakPoint(line, wrapWidth)
			out = append(out, strings.TrimRight(line[:cut], " "))
			line = indent + strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return out
}

// breakPoint returns the byte index of the last space within the first
// width runes, or the byte index of rune width when there is none. Spaces in
// the first three bytes (bullet or indentation) are not break points.
func breakPoint(line string, width int) int {
	lastSpace := -1
	runes := 0
	for i, r := range line {
		if runes == width {
			if lastSpace > 0 {
				return lastSpace
			}
			return i
		}
		if r == ' ' && i >= 3 {
			lastSpace = i
		}
		runes++
	}
	return len(line)
}

// paginate splits lines into pages and never leaves a heading at the
// bottom of a page with its underline on the next one.
func paginate(lines []string) [][]string {
	var pages [][]string
	var current []string

	for i, line := range lines {
		headingAtBottom := len(current) == linesPerPage-1 &&
			i+1 < len(lines) && isUnderline(lines[i+1])
		if len(current) == linesPerPage || (headingAtBottom && len(current) > 0) {
			pages = append(pages, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 || len(pages) == 0 {
		pages = append(pages, current)
	}
	return pages
}

func isUnderline(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "-") == ""
}

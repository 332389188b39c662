package extract

import "strings"

// codeLine is one line of source with comments stripped and blank lines
// already dropped, retaining its original 1-based line number and leading
// indentation (needed for Python's indentation-delimited bodies).
type codeLine struct {
	Text   string // comment-stripped, left/right trimmed
	Indent int    // leading whitespace width before trimming
	Line   int    // 1-based, in the original source
}

// preprocess strips blank lines and comments (line and, when blockOpen is
// non-empty, block comments) from source, grounded on spec.md §4.3's "strips
// blank lines and language-appropriate comments" requirement. blockOpen ==
// "" disables block-comment handling (Python has none).
func preprocess(source string, lineComment, blockOpen, blockClose string) []codeLine {
	var out []codeLine
	inBlock := false
	lineNo := 0

	for _, raw := range strings.Split(source, "\n") {
		lineNo++
		text := raw

		if inBlock {
			idx := strings.Index(text, blockClose)
			if idx == -1 {
				continue
			}
			text = text[idx+len(blockClose):]
			inBlock = false
		}

		for {
			lcIdx := -1
			if lineComment != "" {
				lcIdx = strings.Index(text, lineComment)
			}
			bcIdx := -1
			if blockOpen != "" {
				bcIdx = strings.Index(text, blockOpen)
			}
			if lcIdx == -1 && bcIdx == -1 {
				break
			}
			if bcIdx != -1 && (lcIdx == -1 || bcIdx < lcIdx) {
				rest := text[bcIdx+len(blockOpen):]
				closeIdx := strings.Index(rest, blockClose)
				if closeIdx == -1 {
					text = text[:bcIdx]
					inBlock = true
					break
				}
				text = text[:bcIdx] + rest[closeIdx+len(blockClose):]
				continue
			}
			text = text[:lcIdx]
			break
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		indent := len(text) - len(strings.TrimLeft(text, " \t"))
		out = append(out, codeLine{Text: trimmed, Indent: indent, Line: lineNo})
	}
	return out
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// readIdentifier reads a leading identifier from s, returning it and the
// remainder of s immediately following it.
func readIdentifier(s string) (ident, rest string) {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// lastIdentifier returns the trailing identifier token in s (used to pull a
// function name out of "int *add" or "std::string Foo::bar").
func lastIdentifier(s string) string {
	end := len(s)
	for end > 0 && !isIdentByte(s[end-1]) {
		end--
	}
	start := end
	for start > 0 && isIdentByte(s[start-1]) {
		start--
	}
	return s[start:end]
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// captureBraceBody collects every line from startIdx until brace depth
// (counted from startIdx onward) returns to zero, returning the
// concatenated text and the index of the closing line.
func captureBraceBody(lines []codeLine, startIdx int) (string, int) {
	depth := 0
	started := false
	var sb strings.Builder
	last := startIdx
	for i := startIdx; i < len(lines); i++ {
		line := lines[i].Text
		for _, r := range line {
			switch r {
			case '{':
				depth++
				started = true
			case '}':
				depth--
			}
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		last = i
		if started && depth <= 0 {
			break
		}
	}
	return sb.String(), last
}

// captureIndentBody collects every subsequent line more indented than
// lines[startIdx], stopping at the first line at or below that indentation
// (Python's block delimiter).
func captureIndentBody(lines []codeLine, startIdx int) (string, int) {
	base := lines[startIdx].Indent
	var sb strings.Builder
	last := startIdx
	for i := startIdx + 1; i < len(lines); i++ {
		if lines[i].Indent <= base {
			break
		}
		sb.WriteString(lines[i].Text)
		sb.WriteByte('\n')
		last = i
	}
	return sb.String(), last
}

// afterMatchingParen returns the text following the close paren that
// matches the first open paren in line, or "" if line has no balanced
// parens. Used to skip past a Go method receiver or a parameter list to
// reach the return-type span.
func afterMatchingParen(line string) string {
	start := strings.Index(line, "(")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return line[i+1:]
			}
		}
	}
	return ""
}

var controlFlowPrefixes = []string{
	"if(", "if (", "while(", "while (", "for(", "for (",
	"switch(", "switch (", "catch(", "catch (", "else", "do ", "do{", "do {",
}

func isControlFlowLine(text string) bool {
	return startsWithAny(text, controlFlowPrefixes)
}

// returnTypeBetween returns the trimmed text after the last occurrence of
// afterMarker, up to the first following stop (or to the end of line when
// stop is absent), and "" when afterMarker is absent. The Python extractor
// uses it with "->" .. ":" to read a return annotation.
func returnTypeBetween(line, afterMarker, stop string) string {
	idx := strings.LastIndex(line, afterMarker)
	if idx == -1 {
		return ""
	}
	rest := line[idx+len(afterMarker):]
	stopIdx := strings.Index(rest, stop)
	if stopIdx == -1 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:stopIdx])
}

package classset

import (
	"bytes"
	stdhtml "html"
	"os"

	"github.com/juju/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
	"github.com/tdewolff/parse/v2/xml"
)

var classAttrName = []byte("class")

// parserState maintains context while lexing one HTML document
type parserState struct {
	filePath string
	content  []byte
	builder  *builder

	// Line tracking: line is the line number at byte offset lineOffset
	line       int
	lineOffset int

	// Current start tag
	tagLine   int
	seenClass bool // Only the first class attribute of an element counts
}

// ExtractClassSets parses an HTML document and returns the class set of every
// element with a non-empty class attribute, keyed by set, with the element's
// location in filePath.
//
// Malformed markup is not an error: the lexer recovers and every element it can
// still identify is reported.
func ExtractClassSets(filePath string, content []byte) Entries {
	state := &parserState{
		filePath: filePath,
		content:  content,
		builder:  newBuilder(),
		line:     1,
	}

	input := parse.NewInputString(string(content))
	lexer := html.NewLexer(input)

	stalled := -1
	for {
		tt, data := lexer.Next()
		switch tt {
		case html.ErrorToken:
			// NUL inside svg/math/xml content is reported mid-document and
			// the lexer moves on after it
			if input.Err() != nil || input.Offset() == stalled {
				return state.builder.entries()
			}
			stalled = input.Offset()

		case html.StartTagToken:
			// data holds "<tagname" and the input sits right after it
			state.startTag(input.Offset() - len(data))

		case html.AttributeToken:
			state.attribute(lexer.Text(), lexer.AttrVal())

		case html.SVGToken, html.MathToken, html.XMLToken:
			// The whole foreign element, from "<svg" to "</svg>", arrives as one token
			state.extractForeign(data, input.Offset()-len(data))
		}
	}
}

// extractForeign lexes an inline svg, math or xml element whose "<" sits at
// offset base. An unclosed element extends to the end of the document.
func (s *parserState) extractForeign(data []byte, base int) {
	input := parse.NewInputBytes(bytes.Clone(data))
	lexer := xml.NewLexer(input)

	for {
		tt, tok := lexer.Next()
		switch tt {
		case xml.ErrorToken:
			return

		case xml.StartTagToken:
			s.startTag(base + input.Offset() - len(tok))

		case xml.AttributeToken:
			s.attribute(lexer.Text(), lexer.AttrVal())
		}
	}
}

// ExtractFile reads an HTML file and extracts its class sets
func ExtractFile(path string) (Entries, error) {
	// #nosec G304 - path comes from walking the configured root
	content, err := os.ReadFile(path)
	if err != nil {
		return Entries{}, errors.Annotatef(err, "read file %s", path)
	}

	return ExtractClassSets(path, content), nil
}

// startTag records the line of a start tag beginning at offset
func (s *parserState) startTag(offset int) {
	s.tagLine = s.lineAt(offset)
	s.seenClass = false
}

// attribute records the element when name is its first class attribute
func (s *parserState) attribute(name, rawValue []byte) {
	if !bytes.EqualFold(name, classAttrName) || s.seenClass {
		return
	}
	s.seenClass = true

	set := ParseClassAttr(attrValue(rawValue))
	if set.IsEmpty() {
		// class="" or whitespace only
		return
	}

	s.builder.add(set, CodeLocation{
		File: s.filePath,
		Line: s.tagLine,
	})
}

// lineAt returns the 1-based line number at offset.
// Offsets arrive in increasing order, so only the new bytes are scanned.
func (s *parserState) lineAt(offset int) int {
	if offset > len(s.content) {
		offset = len(s.content)
	}
	if offset > s.lineOffset {
		s.line += bytes.Count(s.content[s.lineOffset:offset], []byte{'\n'})
		s.lineOffset = offset
	}
	return s.line
}

// attrValue strips surrounding quotes and decodes character references
func attrValue(raw []byte) string {
	if len(raw) > 0 && (raw[0] == '"' || raw[0] == '\'') {
		quote := raw[0]
		raw = raw[1:]
		// Unterminated values run to the end of the tag
		if len(raw) > 0 && raw[len(raw)-1] == quote {
			raw = raw[:len(raw)-1]
		}
	}
	return stdhtml.UnescapeString(string(raw))
}

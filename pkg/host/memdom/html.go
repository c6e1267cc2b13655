package memdom

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"
)

// HTMLOptions configures HTML serialization.
type HTMLOptions struct {
	// Pretty enables indented output, one element per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// NodeIDs adds a data-reakt-id attribute carrying each element's node id.
	NodeIDs bool
}

// OuterHTML serializes the node and its subtree.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	_ = WriteHTML(&buf, n, HTMLOptions{})
	return buf.String()
}

// InnerHTML serializes the children of the node.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, c := range n.children {
		_ = WriteHTML(&buf, c, HTMLOptions{})
	}
	return buf.String()
}

// WriteHTML streams the subtree rooted at n to w.
func WriteHTML(w io.Writer, n *Node, opts HTMLOptions) error {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	hw := &htmlWriter{w: w, opts: opts}
	hw.node(n, 0)
	return hw.err
}

type htmlWriter struct {
	w    io.Writer
	opts HTMLOptions
	err  error
}

func (h *htmlWriter) write(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) indent(depth int) {
	if h.opts.Pretty {
		h.write(strings.Repeat(h.opts.Indent, depth))
	}
}

func (h *htmlWriter) newline() {
	if h.opts.Pretty {
		h.write("\n")
	}
}

func (h *htmlWriter) node(n *Node, depth int) {
	if n == nil {
		return
	}
	if n.typ == TextNode {
		h.indent(depth)
		h.write(escapeHTML(n.text))
		h.newline()
		return
	}

	h.indent(depth)
	h.write("<")
	h.write(n.tag)
	h.attributes(n)
	h.write(">")

	if IsVoidElement(n.tag) {
		h.newline()
		return
	}

	if len(n.children) > 0 {
		h.newline()
		for _, c := range n.children {
			h.node(c, depth+1)
		}
		h.indent(depth)
	}

	h.write("</")
	h.write(n.tag)
	h.write(">")
	h.newline()
}

// attributes writes attributes sorted by name for deterministic output.
func (h *htmlWriter) attributes(n *Node) {
	keys := make([]string, 0, len(n.attr))
	for k := range n.attr {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if h.opts.NodeIDs {
		h.write(` data-reakt-id="`)
		h.write(strconv.FormatUint(n.id, 10))
		h.write(`"`)
	}
	for _, k := range keys {
		v := n.attr[k]
		h.write(" ")
		h.write(k)
		if v == "" && isBooleanAttr(k) {
			continue
		}
		h.write(`="`)
		h.write(escapeAttr(v))
		h.write(`"`)
	}
}

func isBooleanAttr(name string) bool {
	switch name {
	case "hidden", "disabled", "readonly", "checked", "selected":
		return true
	}
	return false
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for attribute values, including whitespace that
// could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteString(escapeHTML(string(r)))
		}
	}

	return buf.String()
}

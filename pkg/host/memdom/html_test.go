package memdom

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reakt-dev/reakt/pkg/host"
)

func buildTree(doc *Document) *Node {
	root := doc.Element("div")
	root.SetProperty("className", "app")
	h1 := doc.Element("h1")
	h1.SetProperty("id", "title")
	h1.AppendChild(doc.Text("Tom & <Jerry>"))
	in := doc.Element("input")
	in.SetProperty("disabled", true)
	in.SetAttribute("data-note", "a\"b")
	root.AppendChild(h1)
	root.AppendChild(in)
	return root
}

func TestOuterHTML(t *testing.T) {
	root := buildTree(NewDocument())

	want := `<div class="app"><h1 id="title">Tom &amp; &lt;Jerry&gt;</h1><input data-note="a&quot;b" disabled></div>`
	if diff := cmp.Diff(want, root.OuterHTML()); diff != "" {
		t.Errorf("OuterHTML (-want +got):\n%s", diff)
	}
	if got := root.InnerHTML(); got != want[len(`<div class="app">`):len(want)-len("</div>")] {
		t.Errorf("InnerHTML() = %s", got)
	}
}

func TestWriteHTMLPretty(t *testing.T) {
	doc := NewDocument()
	root := doc.Element("ul")
	li := doc.Element("li")
	li.AppendChild(doc.Text("one"))
	root.AppendChild(li)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, root, HTMLOptions{Pretty: true}); err != nil {
		t.Fatal(err)
	}
	want := "<ul>\n  <li>\n    one\n  </li>\n</ul>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("pretty HTML (-want +got):\n%s", diff)
	}
}

func TestWriteHTMLNodeIDs(t *testing.T) {
	doc := NewDocument()
	root := doc.Element("p")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, root, HTMLOptions{NodeIDs: true}); err != nil {
		t.Fatal(err)
	}
	want := `<p data-reakt-id="` + strconv.FormatUint(root.ID(), 10) + `"></p>`
	if buf.String() != want {
		t.Errorf("got %s, want %s", buf.String(), want)
	}
}

func TestOuterHTMLSkipsInjectedAttributeNames(t *testing.T) {
	doc := NewDocument()
	n := doc.Element("p")
	n.SetAttribute("x onmouseover=alert(1) y", "1")
	n.SetAttribute("title", "ok")

	if got, want := n.OuterHTML(), `<p title="ok"></p>`; got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}
}

func TestEscapeAttr(t *testing.T) {
	if got := escapeAttr("a\n\tb<'"); got != "a&#10;&#9;b&lt;&#39;" {
		t.Errorf("escapeAttr() = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	doc := NewDocument()
	root := buildTree(doc)
	root.AddEventListener("click", func(host.Event) {})

	snap := root.Snapshot()
	if snap.Tag != "div" || snap.Type != "Element" {
		t.Fatalf("snapshot root = %+v", snap)
	}
	if !cmp.Equal(snap.Events, []string{"click"}) {
		t.Errorf("Events = %v", snap.Events)
	}
	if len(snap.Children) != 2 || snap.Children[0].Children[0].Text != "Tom & <Jerry>" {
		t.Errorf("children = %+v", snap.Children)
	}
	if snap.Props["className"] != "app" {
		t.Errorf("Props = %v", snap.Props)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.ID != root.ID() {
		t.Errorf("ID = %d, want %d", back.ID, root.ID())
	}
}

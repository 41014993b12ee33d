package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildSample assembles the tree used by the navigation tests:
//
//	<body>
//	  "t0" <header></header> "t1"
//	  <div id="body">
//	    <main id="article"><p id="p1">Paragraph</p></main>
//	    <nav id="sidebar"></nav>
//	    <aside id="ads"></aside>
//	  </div>
//	  "t2"
//	</body>
func buildSample(t *testing.T) Node {
	t.Helper()
	b := NewBuilder()
	b.StartTag("body", nil)
	b.Text("t0")
	b.StartTag("header", nil)
	must(t, b.EndTag("header"))
	b.Text("t1")
	b.StartTag("div", []Attribute{{Name: "id", Value: "body"}})
	b.StartTag("main", []Attribute{{Name: "id", Value: "article"}})
	b.StartTag("p", []Attribute{{Name: "id", Value: "p1"}})
	b.Text("Paragraph")
	must(t, b.EndTag("p"))
	must(t, b.EndTag("main"))
	b.StartTag("nav", []Attribute{{Name: "id", Value: "sidebar"}})
	must(t, b.EndTag("nav"))
	b.StartTag("aside", []Attribute{{Name: "id", Value: "ads"}})
	must(t, b.EndTag("aside"))
	must(t, b.EndTag("div"))
	b.Text("t2")
	must(t, b.EndTag("body"))
	return mustRoot(t, b)
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// byID finds the element with the given id attribute, depth-first.
func byID(t *testing.T, root Node, id string) *ElementNode {
	t.Helper()
	for _, d := range Descendants(root) {
		if val, ok := d.Attr("id"); ok && val == id {
			return d.(*ElementNode)
		}
	}
	t.Fatalf("no element with id %q", id)
	return nil
}

// labels maps nodes to a compact readable form for comparisons: elements by
// tag, text nodes by quoted content.
func labels(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if n.Tag() != "" {
			out[i] = n.Tag()
		} else {
			out[i] = "'" + n.Text() + "'"
		}
	}
	return out
}

func TestDescendantsPreOrder(t *testing.T) {
	root := buildSample(t)
	want := []string{"'t0'", "header", "'t1'", "div", "main", "p", "'Paragraph'", "nav", "aside", "'t2'"}
	if diff := cmp.Diff(want, labels(Descendants(root))); diff != "" {
		t.Errorf("Descendants mismatch (-want +got):\n%s", diff)
	}
}

func TestDescendantsOfLeaf(t *testing.T) {
	root := buildSample(t)
	if got := Descendants(byID(t, root, "sidebar")); len(got) != 0 {
		t.Errorf("Descendants of empty element = %v, want none", labels(got))
	}
}

func TestAncestors(t *testing.T) {
	root := buildSample(t)
	p1 := byID(t, root, "p1")
	body := root

	got, err := Ancestors(p1, nil)
	if err != nil {
		t.Fatalf("Ancestors error = %v", err)
	}
	if diff := cmp.Diff([]string{"main", "div", "body"}, labels(got)); diff != "" {
		t.Errorf("unbounded ancestors (-want +got):\n%s", diff)
	}

	divBody := byID(t, root, "body")
	got, err = Ancestors(p1, divBody)
	if err != nil {
		t.Fatalf("Ancestors error = %v", err)
	}
	if diff := cmp.Diff([]string{"main", "div"}, labels(got)); diff != "" {
		t.Errorf("bounded ancestors (-want +got):\n%s", diff)
	}

	// The bounding root itself yields nothing.
	got, err = Ancestors(p1, p1)
	if err != nil || len(got) != 0 {
		t.Errorf("Ancestors(n, n) = %v, %v; want empty, nil", labels(got), err)
	}

	// A root yields an empty chain when unbounded, never an error.
	got, err = Ancestors(body, nil)
	if err != nil || len(got) != 0 {
		t.Errorf("Ancestors(root, nil) = %v, %v; want empty, nil", labels(got), err)
	}
}

func TestAncestorsContractViolation(t *testing.T) {
	root := buildSample(t)
	p1 := byID(t, root, "p1")
	sidebar := byID(t, root, "sidebar")

	// sidebar is not on p1's ancestor chain.
	if _, err := Ancestors(p1, sidebar); !errors.Is(err, ErrNotAncestor) {
		t.Errorf("Ancestors with foreign root: error = %v, want ErrNotAncestor", err)
	}
	// Nor is a descendant of the start node.
	if _, err := Ancestors(root, p1); !errors.Is(err, ErrNotAncestor) {
		t.Errorf("Ancestors with descendant root: error = %v, want ErrNotAncestor", err)
	}
}

func TestSiblings(t *testing.T) {
	root := buildSample(t)

	div := byID(t, root, "body")
	if diff := cmp.Diff([]string{"'t2'"}, labels(NextSiblings(div))); diff != "" {
		t.Errorf("NextSiblings (-want +got):\n%s", diff)
	}
	// Nearest first: reverse of document order.
	if diff := cmp.Diff([]string{"'t1'", "header", "'t0'"}, labels(PreviousSiblings(div))); diff != "" {
		t.Errorf("PreviousSiblings (-want +got):\n%s", diff)
	}

	if sib := NextSibling(div); sib == nil || sib.Text() != "t2" {
		t.Errorf("NextSibling = %v", sib)
	}
	if sib := PreviousSibling(div); sib == nil || sib.Text() != "t1" {
		t.Errorf("PreviousSibling = %v", sib)
	}
}

func TestElementSiblings(t *testing.T) {
	root := buildSample(t)
	main := byID(t, root, "article")

	if got := NextElementSibling(main); got == nil || got.Tag() != "nav" {
		t.Errorf("NextElementSibling(main) = %v, want nav", got)
	}
	aside := byID(t, root, "ads")
	if got := PreviousElementSibling(aside); got == nil || got.Tag() != "nav" {
		t.Errorf("PreviousElementSibling(aside) = %v, want nav", got)
	}

	// Text siblings are skipped.
	div := byID(t, root, "body")
	if got := PreviousElementSibling(div); got == nil || got.Tag() != "header" {
		t.Errorf("PreviousElementSibling(div) = %v, want header", got)
	}
}

func TestRootHasNoSiblings(t *testing.T) {
	root := buildSample(t)
	if got := NextSiblings(root); len(got) != 0 {
		t.Errorf("NextSiblings(root) = %v", got)
	}
	if got := PreviousSiblings(root); len(got) != 0 {
		t.Errorf("PreviousSiblings(root) = %v", got)
	}
	if NextSibling(root) != nil || PreviousSibling(root) != nil {
		t.Error("root has a sibling")
	}
	if NextElementSibling(root) != nil || PreviousElementSibling(root) != nil {
		t.Error("root has an element sibling")
	}
}

func TestChildAccessors(t *testing.T) {
	root := buildSample(t)

	if got := FirstChild(root); got == nil || got.Text() != "t0" {
		t.Errorf("FirstChild(root) = %v, want text 't0'", got)
	}
	if got := LastChild(root); got == nil || got.Text() != "t2" {
		t.Errorf("LastChild(root) = %v, want text 't2'", got)
	}
	if got := FirstElementChild(root); got == nil || got.Tag() != "header" {
		t.Errorf("FirstElementChild(root) = %v, want header", got)
	}
	if got := LastElementChild(root); got == nil || got.Tag() != "div" {
		t.Errorf("LastElementChild(root) = %v, want div", got)
	}

	empty := byID(t, root, "sidebar")
	if FirstChild(empty) != nil || LastChild(empty) != nil {
		t.Error("empty element has a child")
	}
	if FirstElementChild(empty) != nil || LastElementChild(empty) != nil {
		t.Error("empty element has an element child")
	}

	// Element-filtered accessors skip a leading/trailing text node.
	main := byID(t, root, "article")
	if got := FirstElementChild(main); got == nil || got.Tag() != "p" {
		t.Errorf("FirstElementChild(main) = %v, want p", got)
	}
}

func TestTextNodeNavigation(t *testing.T) {
	root := buildSample(t)
	text := FirstChild(byID(t, root, "p1"))
	if text == nil || text.Tag() != "" {
		t.Fatalf("expected a text node, got %v", text)
	}
	if FirstChild(text) != nil || LastChild(text) != nil {
		t.Error("text node has children")
	}
	if NextSibling(text) != nil || PreviousSibling(text) != nil {
		t.Error("lone text node has siblings")
	}
	if len(Descendants(text)) != 0 {
		t.Error("text node has descendants")
	}
}

func TestTextNodeIdentity(t *testing.T) {
	b := NewBuilder()
	b.StartTag("p", nil)
	b.Text("abc")
	b.Text("abc")
	must(t, b.EndTag("p"))
	root := mustRoot(t, b)

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	t1, t2 := children[0], children[1]
	if t1 == t2 {
		t.Error("distinct text nodes compare equal")
	}
	if t1.Text() != t2.Text() {
		t.Error("text content differs")
	}
	if t1 != children[0] {
		t.Error("text node not equal to itself")
	}
}

func TestClasses(t *testing.T) {
	b := NewBuilder()
	b.StartTag("div", []Attribute{{Name: "class", Value: "  first-party   ad "}})
	b.Text("x")
	must(t, b.EndTag("div"))
	root := mustRoot(t, b)
	if diff := cmp.Diff([]string{"first-party", "ad"}, Classes(root)); diff != "" {
		t.Errorf("Classes (-want +got):\n%s", diff)
	}
	if got := Classes(FirstChild(root)); got != nil {
		t.Errorf("Classes of text node = %v, want nil", got)
	}
}

package definition_test

import (
	"testing"

	"github.com/markdown-core/tokenizer/definition"
)

func TestCollect(t *testing.T) {
	source := []byte(`[foo]: /url
[Bar Baz]: /other "title"
plain text line
  [indented]: /ok
    [too deep]: /not-a-definition
[no destination]:
[un[escaped]: /x
[escaped \[ok\]]: /y
`)

	set := definition.Collect(source)

	for _, want := range []string{"foo", "bar baz", "indented", `escaped \[ok\]`} {
		if !set.Has(want) {
			t.Errorf("expected %q to be defined", want)
		}
	}
	for _, absent := range []string{"too deep", "no destination", "un[escaped", "plain text line"} {
		if set.Has(absent) {
			t.Errorf("%q must not be defined", absent)
		}
	}
}

func TestCollectNormalizes(t *testing.T) {
	set := definition.Collect([]byte("[FOO  Bar]: /url\n"))
	if !set.Has("foo bar") {
		t.Error("definition labels must be stored normalized")
	}
}

func TestSetAddAndHas(t *testing.T) {
	set := definition.Set{}
	set.Add(" Foo ")
	if !set.Has("foo") {
		t.Error("Add must normalize before storing")
	}
	if set.Has("bar") {
		t.Error("unknown identifier must not be defined")
	}
}

package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlternates_OrderAndDedupe(t *testing.T) {
	var alternates Alternates
	alternates.Add("BodyPart_Summary", "BodyPart__BlogPost")
	alternates.Add("BodyPart_Summary", "", "BodyPart_Summary__BlogPost")

	want := []string{"BodyPart_Summary", "BodyPart__BlogPost", "BodyPart_Summary__BlogPost"}
	if diff := cmp.Diff(want, alternates.Values()); diff != "" {
		t.Fatalf("alternates mismatch (-want +got):\n%s", diff)
	}
	if got := alternates.Last(); got != "BodyPart_Summary__BlogPost" {
		t.Fatalf("last: want most specific, got %q", got)
	}
	if !alternates.Contains("BodyPart__BlogPost") {
		t.Fatal("contains lookup failed")
	}
	if alternates.Len() != 3 {
		t.Fatalf("len: want 3, got %d", alternates.Len())
	}
}

func TestComposite_PropertyBag(t *testing.T) {
	shape := NewComposite("Content")
	shape.Set("Title", "Hello")
	shape.Set("", "dropped")
	shape.AddClass("content")
	shape.AddClass("content")
	shape.SetAttribute("role", "main")

	if got, _ := shape.Get("Title"); got != "Hello" {
		t.Fatalf("get: %v", got)
	}
	if _, ok := shape.Get("missing"); ok {
		t.Fatal("missing property reported present")
	}
	if got := len(shape.Classes()); got != 1 {
		t.Fatalf("duplicate class not collapsed: %d", got)
	}
	if shape.Attributes()["role"] != "main" {
		t.Fatal("attribute lost")
	}
	if diff := cmp.Diff([]string{"Title"}, shape.PropertyNames()); diff != "" {
		t.Fatalf("property names (-want +got):\n%s", diff)
	}
}

package theme

import (
	"testing"

	"github.com/typefirst/overtype/internal/render"
	"github.com/typefirst/overtype/internal/token"
)

func TestEveryCategoryHasDistinctIntensityVariants(t *testing.T) {
	th := Default()
	for _, cat := range token.Categories() {
		full := th.Style(render.Correct, cat).GetForeground()
		faint := th.Style(render.Untyped, cat).GetForeground()
		if full == faint {
			t.Fatalf("category %v: full and faint variants must differ", cat)
		}
	}
}

func TestIncorrectStyleIgnoresCategory(t *testing.T) {
	th := Default()
	base := th.Style(render.Incorrect, token.Default).GetForeground()
	for _, cat := range token.Categories() {
		if got := th.Style(render.Incorrect, cat).GetForeground(); got != base {
			t.Fatalf("category %v: incorrect style must be fixed", cat)
		}
	}
}

func TestUnknownCategoryFallsBackToDefault(t *testing.T) {
	th := Default()
	unknown := token.Category(999)
	if th.Style(render.Correct, unknown).GetForeground() != th.Style(render.Correct, token.Default).GetForeground() {
		t.Fatalf("unknown category must use the default style")
	}
}

func TestCursorAddsUnderline(t *testing.T) {
	th := Default()
	base := th.Style(render.Untyped, token.Default)
	if !th.Cursor(base).GetUnderline() {
		t.Fatalf("cursor style must underline")
	}
}

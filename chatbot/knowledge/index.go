package knowledge

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
	radix "github.com/armon/go-radix"
)

// Index is a prebuilt keyword lookup over a Base. Context sections are
// rendered once at construction; Search only selects and concatenates them,
// so it stays pure and allocation-light per query.
//
// The keyword table is a radix tree mapping each normalized keyword to a
// bitmap of section ordinals. Section ordinals follow render order, which
// keeps the output order of multi-section matches stable.
type Index struct {
	sections []string
	overview string
	tree     *radix.Tree // keyword -> *roaring.Bitmap
}

// NewIndex builds the keyword index for a corpus.
func NewIndex(b Base) *Index {
	idx := &Index{tree: radix.New()}

	add := func(section uint32, keywords ...string) {
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			var bm *roaring.Bitmap
			if v, ok := idx.tree.Get(kw); ok {
				bm = v.(*roaring.Bitmap)
			} else {
				bm = roaring.New()
				idx.tree.Insert(kw, bm)
			}
			bm.Add(section)
		}
	}

	next := func(rendered string) uint32 {
		idx.sections = append(idx.sections, rendered)
		return uint32(len(idx.sections) - 1)
	}

	add(next(renderProfile(b.Profile)), "about", "profile", "background", "education", "who is")

	for _, p := range b.Projects {
		add(next(renderProject(p)), projectKeywords(p)...)
	}

	add(next(renderExpertise(b.Expertise)), "skills", "technology", "expertise", "tech stack")
	add(next(renderMethodology(b.Methodology)), "ai orchestration", "ai-orchestrated", "how do you", "methodology")
	add(next(renderTooling(b.Profile, b.Tooling)),
		"which ai", "what ai", "ai tool", "ai assistant", "development tool", "coding tool",
		"augment", "claude", "ide plugin", "ai use", "ai does", "tool use",
		"primary tool", "main tool", "favorite tool")

	idx.overview = renderOverview(b)
	return idx
}

// projectKeywords returns the query keywords that select a project section.
// Alias sets match the topic vocabulary used by the classifier.
func projectKeywords(p Project) []string {
	kws := []string{strings.ToLower(p.Name)}
	switch p.Key {
	case "rakhimart":
		kws = append(kws, "rakhi mart", "e-commerce", "ecommerce", "cashfree", "payment", "delivery partner")
	case "event-manager":
		kws = append(kws, "event management", "nit silchar")
	case "gitiq":
		kws = append(kws, "git iq", "repository")
	case "portfolio":
		kws = append(kws, "website")
	}
	return kws
}

// Search returns the context string for a free-text query. It never fails:
// when no keyword matches, a general overview is returned.
func (x *Index) Search(query string) string {
	q := strings.ToLower(query)
	matched := roaring.New()

	x.tree.Walk(func(kw string, v interface{}) bool {
		if strings.Contains(q, kw) {
			matched.Or(v.(*roaring.Bitmap))
		}
		return false
	})

	if matched.IsEmpty() {
		return x.overview
	}

	var sb strings.Builder
	it := matched.Iterator()
	for it.HasNext() {
		sb.WriteString(x.sections[it.Next()])
	}
	return sb.String()
}

// Overview returns the general fallback context.
func (x *Index) Overview() string {
	return x.overview
}

package listing

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/harshbutfairx/signoz-web/internal/content"
)

var tagPool = []string{"Kubernetes", "kubernetes ", "Dev Ops", "DevOps", "AWS", "OpenTelemetry", "Logs", "Traces"}

var titlePool = []string{"OpenTelemetry Guide", "AWS Setup", "Kubernetes Logging", "Trace sampling", "Log pipelines"}

// buildItems turns generated tag index lists into a deterministic collection.
func buildItems(tagIdx [][]int) []content.Item {
	items := make([]content.Item, len(tagIdx))
	for i, idx := range tagIdx {
		tags := make([]string, 0, len(idx))
		for _, j := range idx {
			tags = append(tags, tagPool[j])
		}
		items[i] = content.Item{
			Slug:     fmt.Sprintf("item-%d", i),
			Title:    titlePool[i%len(titlePool)],
			Tags:     tags,
			Position: i,
		}
	}
	return items
}

// isSubsequenceOf reports whether sub appears in all, in order, by position.
func isSubsequenceOf(sub, all []content.Item) bool {
	j := 0
	for _, it := range all {
		if j < len(sub) && sub[j].Position == it.Position {
			j++
		}
	}
	return j == len(sub)
}

func TestListingProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	itemsGen := gen.SliceOf(gen.SliceOf(gen.IntRange(0, len(tagPool)-1)))
	topicGen := gen.IntRange(0, len(tagPool)-1)

	properties.Property("topic filter is an ordered subset with matching tags", prop.ForAll(
		func(tagIdx [][]int, topicIdx int) bool {
			items := buildItems(tagIdx)
			topic := tagPool[topicIdx]
			got := FilterByTopic(items, topic)
			if !isSubsequenceOf(got, items) {
				return false
			}
			for _, it := range got {
				if !hasTopic(it, Normalize(topic)) {
					return false
				}
			}
			return true
		},
		itemsGen, topicGen,
	))

	properties.Property("empty topic selects nothing", prop.ForAll(
		func(tagIdx [][]int) bool {
			return len(FilterByTopic(buildItems(tagIdx), "")) == 0
		},
		itemsGen,
	))

	properties.Property("empty search is identity", prop.ForAll(
		func(tagIdx [][]int) bool {
			items := buildItems(tagIdx)
			return reflect.DeepEqual(Search(items, ""), items)
		},
		itemsGen,
	))

	properties.Property("search is idempotent and order preserving", prop.ForAll(
		func(tagIdx [][]int, query string) bool {
			items := buildItems(tagIdx)
			once := Search(items, query)
			twice := Search(once, query)
			return reflect.DeepEqual(once, twice) && isSubsequenceOf(once, items)
		},
		itemsGen, gen.AlphaString(),
	))

	properties.Property("total pages is the ceiling of n over page size", prop.ForAll(
		func(n int) bool {
			want := n / PageSize
			if n%PageSize != 0 {
				want++
			}
			return TotalPages(n, PageSize) == want
		},
		gen.IntRange(0, 10000),
	))

	properties.Property("pages partition the listing", prop.ForAll(
		func(n int) bool {
			items := makeItems(n)
			total := TotalPages(n, PageSize)
			var joined []content.Item
			for p := 1; p <= total; p++ {
				joined = append(joined, Paginate(items, p, PageSize).Items...)
			}
			return len(joined) == n && (n == 0 || reflect.DeepEqual(joined, items))
		},
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}

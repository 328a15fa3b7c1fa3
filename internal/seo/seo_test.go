package seo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSitePage(t *testing.T) {
	site := Site{Name: "SigNoz", BaseURL: "https://signoz.io/", Image: "/img/og.png"}
	m := site.Page("Guides", "Learn things", "/resource-center/guides", "", "")

	require.Equal(t, "Guides | SigNoz", m.Title)
	require.Equal(t, "https://signoz.io/resource-center/guides", m.Canonical)
	require.Equal(t, "https://signoz.io/img/og.png", m.OG.Image)
	require.Equal(t, "website", m.OG.Type)
	require.Equal(t, "summary_large_image", m.Twitter.Card)

	home := site.Page("", "", "/", "https://cdn.example.com/x.png", "")
	require.Equal(t, "SigNoz", home.Title)
	require.Equal(t, "https://cdn.example.com/x.png", home.OG.Image)
}

func TestArticleAndItemList(t *testing.T) {
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m := Meta{}.WithJSONLD(
		Article(ArticleInput{Headline: "Kubernetes Logging", Author: "Ankit", Keywords: []string{"Kubernetes", "Logs"}, Published: published}),
		ItemList("Guides", 21, []ListEntry{{Name: "A", URL: "https://x/a"}}),
		func() {},
	)
	require.Len(t, m.JSONLD, 2)

	var article map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[0]), &article))
	require.Equal(t, "Article", article["@type"])
	require.Equal(t, "2024-03-01T00:00:00Z", article["datePublished"])
	require.Equal(t, "Kubernetes, Logs", article["keywords"])
	require.NotContains(t, article, "dateModified")

	var list map[string]any
	require.NoError(t, json.Unmarshal([]byte(m.JSONLD[1]), &list))
	first := list["itemListElement"].([]any)[0].(map[string]any)
	require.EqualValues(t, 21, first["position"])
}

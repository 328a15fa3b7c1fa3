package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harshbutfairx/signoz-web/internal/seo"
)

func TestBuildHomeData(t *testing.T) {
	site := seo.Site{Name: "SigNoz", BaseURL: "https://signoz.io"}
	vm := BuildHomeData(site, map[string]int{"guides": 3}, []ProductLink{{Href: "/log-management", Title: "Logs"}})
	home, ok := vm.Home.(HomeData)
	require.True(t, ok)

	require.Equal(t, "/", vm.Path)
	require.Equal(t, "SigNoz", vm.SEO.Title)
	require.Len(t, vm.SEO.JSONLD, 2)
	require.Len(t, home.Sections, 2)
	require.Equal(t, 3, home.Sections[0].Count)
	require.Equal(t, "/resource-center/guides", home.Sections[0].Href)
	require.Contains(t, vm.SEO.JSONLD[0], `"logo":"https://signoz.io/assets/img/logo.svg"`)
	require.Len(t, vm.Breadcrumbs, 1)
}

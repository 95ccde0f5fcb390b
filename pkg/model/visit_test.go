package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/visitor"
)

func newBundle(t *testing.T) *Bundle {
	t.Helper()
	first, err := NewBundleEntryBuilder().
		FullURL(MustUri("urn:uuid:c757873d-ec9a-4326-a141-556f43239520")).
		Build()
	require.NoError(t, err)
	request, err := NewBundleEntryRequestBuilder().
		Method(HTTPVerbGET.Code()).
		URL(MustUri("Patient")).
		Build()
	require.NoError(t, err)
	second, err := NewBundleEntryBuilder().Request(request).Build()
	require.NoError(t, err)

	bundle, err := NewBundleBuilder().
		ID(MustId("b1")).
		Type(BundleTypeCollection.Code()).
		Entry(first, second).
		Build()
	require.NoError(t, err)
	return bundle
}

func TestAcceptVisitsChildrenInDeclarationOrder(t *testing.T) {
	period, err := NewPeriodBuilder().
		ID("p1").
		Start(MustDateTime("2020-01-01")).
		End(MustDateTime("2020-12-31")).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Period",
		"Period.id",
		"Period.start",
		"Period.start.value",
		"Period.end",
		"Period.end.value",
	}, visitor.Paths("Period", period))
}

func TestAcceptBundle(t *testing.T) {
	assert.Equal(t, []string{
		"Bundle",
		"Bundle.id",
		"Bundle.id.value",
		"Bundle.type",
		"Bundle.type.value",
		"Bundle.entry[0]",
		"Bundle.entry[0].fullUrl",
		"Bundle.entry[0].fullUrl.value",
		"Bundle.entry[1]",
		"Bundle.entry[1].request",
		"Bundle.entry[1].request.method",
		"Bundle.entry[1].request.method.value",
		"Bundle.entry[1].request.url",
		"Bundle.entry[1].request.url.value",
	}, visitor.Paths("Bundle", newBundle(t)))
}

func TestAcceptVisitsEachChildOnce(t *testing.T) {
	seen := make(map[visitor.Visitable]int)
	Visit(newChargeItem(t), visitor.Func(func(_ string, _ int, value visitor.Visitable) bool {
		seen[value]++
		return true
	}))

	require.NotEmpty(t, seen)
	for value, n := range seen {
		assert.Equal(t, 1, n, "%T visited %d times", value, n)
	}
}

func TestAcceptChoiceAndResourceOrder(t *testing.T) {
	paths := visitor.Paths("ChargeItem", newChargeItem(t))

	index := func(path string) int {
		for i, p := range paths {
			if p == path {
				return i
			}
		}
		t.Fatalf("path %s not visited", path)
		return -1
	}
	assert.Less(t, index("ChargeItem.id"), index("ChargeItem.identifier[0]"))
	assert.Less(t, index("ChargeItem.identifier[0]"), index("ChargeItem.status"))
	assert.Less(t, index("ChargeItem.subject.reference"), index("ChargeItem.occurrence"))
	assert.Less(t, index("ChargeItem.occurrence.value"), index("ChargeItem.priceOverride"))
	assert.Less(t, index("ChargeItem.priceOverride.currency.value"), index("ChargeItem.note[0].author"))
	assert.Less(t, index("ChargeItem.note[0].author"), index("ChargeItem.note[0].text"))
}

func TestVisitFalseSkipsChildren(t *testing.T) {
	var names []string
	Visit(newBundle(t), visitor.Func(func(name string, _ int, _ visitor.Visitable) bool {
		names = append(names, name)
		return name != "entry"
	}))
	assert.Equal(t, []string{"Bundle", "id", "type", "entry", "entry"}, names)
}

func TestAcceptNil(t *testing.T) {
	var bundle *Bundle
	assert.Empty(t, visitor.Paths("Bundle", bundle))

	Visit(nil, visitor.Default{})
}

func TestAcceptExtensionURL(t *testing.T) {
	ext, err := NewExtension("http://example.org/flag", NewBoolean(false))
	require.NoError(t, err)

	steps := visitor.Collect("extension", ext)
	require.Len(t, steps, 4)
	assert.Equal(t, "extension.url", steps[1].Path)
	assert.Equal(t, "http://example.org/flag", steps[1].Value)
	assert.True(t, steps[1].Leaf)
	assert.Equal(t, "extension.value", steps[2].Path)
	assert.Equal(t, false, steps[3].Value)
}

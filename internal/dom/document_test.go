package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title>Pricing</title></head>
<body>
  <span id="hero" class="price big" data-price-inr="65000">₹65,000</span>
  <span data-price-inr="650">₹650</span>
  <select id="currency-select"><option value="INR">INR</option><option value="USD">USD</option></select>
  <div id="templates-grid"><p>old</p></div>
</body></html>`

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString(page)
	require.NoError(t, err)
	return doc
}

func TestDocument_Find(t *testing.T) {
	doc := mustParse(t)

	prices := doc.FindByAttr("data-price-inr")
	require.Len(t, prices, 2)

	v, ok := Attr(prices[0], "data-price-inr")
	assert.True(t, ok)
	assert.Equal(t, "65000", v)

	hourly := doc.FindByAttrValue("data-price-inr", "650")
	require.Len(t, hourly, 1)
	assert.Equal(t, "₹650", Text(hourly[0]))

	assert.NotNil(t, doc.FindByID("currency-select"))
	assert.Nil(t, doc.FindByID("missing"))

	body, err := doc.Body()
	require.NoError(t, err)
	assert.Equal(t, "body", body.Data)
}

func TestDocument_Mutations(t *testing.T) {
	doc := mustParse(t)

	hero := doc.FindByID("hero")
	require.NotNil(t, hero)

	SetText(hero, "$780")
	assert.Equal(t, "$780", Text(hero))

	SetAttr(hero, "data-currency", "USD")
	v, _ := Attr(hero, "data-currency")
	assert.Equal(t, "USD", v)

	SetAttr(hero, "data-currency", "GBP")
	v, _ = Attr(hero, "data-currency")
	assert.Equal(t, "GBP", v)

	RemoveAttr(hero, "data-currency")
	_, ok := Attr(hero, "data-currency")
	assert.False(t, ok)

	assert.True(t, HasClass(hero, "big"))
	AddClass(hero, "active")
	AddClass(hero, "active")
	cls, _ := Attr(hero, "class")
	assert.Equal(t, "price big active", cls)
	RemoveClass(hero, "big")
	assert.False(t, HasClass(hero, "big"))

	small := NewElement("small")
	SetAttr(small, "class", "price-original")
	small.AppendChild(NewText("(₹65,000)"))
	ReplaceChildren(hero, NewText("$780 "), small)

	assert.Contains(t, doc.String(), `$780 <small class="price-original">(₹65,000)</small>`)
}

func TestParseFragment(t *testing.T) {
	doc := mustParse(t)
	grid := doc.FindByID("templates-grid")
	require.NotNil(t, grid)

	nodes, err := ParseFragment(grid, `<div class="card">A</div><div class="card">B</div>`)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	ReplaceChildren(grid, nodes...)
	assert.Equal(t, "AB", Text(grid))
	assert.NotContains(t, doc.String(), "<p>old</p>")
}

func TestParseFragment_NilParent(t *testing.T) {
	nodes, err := ParseFragment(nil, `<b>x</b>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Nil(t, nodes[0].Parent)
}

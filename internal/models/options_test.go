package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSelectionEqual(t *testing.T) {
	a := OptionSelection{"Cor": "Preto", "Tamanho": "42"}
	b := OptionSelection{"Tamanho": "42", "Cor": "Preto"}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	c := OptionSelection{"Cor": "Branco", "Tamanho": "42"}
	assert.False(t, a.Equal(c))

	d := OptionSelection{"Cor": "Preto"}
	assert.False(t, a.Equal(d))
}

func TestOptionSelectionNilEqualsEmpty(t *testing.T) {
	var nilSel OptionSelection
	empty := OptionSelection{}

	assert.True(t, nilSel.Equal(empty))
	assert.True(t, empty.Equal(nilSel))
	assert.True(t, nilSel.Equal(nil))
}

func TestOptionSelectionCoversAll(t *testing.T) {
	options := []ProductOption{
		{Name: "Cor", Values: []string{"Preto", "Branco"}},
		{Name: "Tamanho", Values: []string{"40", "41"}},
	}

	partial := OptionSelection{"Cor": "Preto"}
	assert.False(t, partial.CoversAll(options))

	full := OptionSelection{"Cor": "Preto", "Tamanho": "40"}
	assert.True(t, full.CoversAll(options))

	var none OptionSelection
	assert.True(t, none.CoversAll(nil))
}

func TestOptionSelectionClone(t *testing.T) {
	orig := OptionSelection{"Cor": "Preto"}
	clone := orig.Clone()

	clone["Cor"] = "Branco"
	assert.Equal(t, "Preto", orig["Cor"])

	assert.Nil(t, OptionSelection{}.Clone())
}

func TestOptionSelectionValuesOrdered(t *testing.T) {
	sel := OptionSelection{"Tamanho": "42", "Cor": "Preto"}
	assert.Equal(t, []string{"Preto", "42"}, sel.Values())
}

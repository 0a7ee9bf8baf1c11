package moneyfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSoles(t *testing.T) {
	got := Soles(decimal.RequireFromString("25.5"))
	assert.Contains(t, got, "S/")
	assert.Contains(t, got, "25.50")
}

func TestSoles_RedondeaADosDecimales(t *testing.T) {
	got := Soles(decimal.RequireFromString("3.333"))
	assert.Contains(t, got, "3.33")
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "7.20", Plain(decimal.RequireFromString("7.2")))
	assert.Equal(t, "0.00", Plain(decimal.Zero))
}

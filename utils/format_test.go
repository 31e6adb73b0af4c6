package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{12345678, "₹1.23 Cr"},
		{10000000, "₹1.00 Cr"},
		{250000, "₹2.50 L"},
		{100000, "₹1.00 L"},
		{99999, "₹99,999"},
		{500, "₹500"},
		{0, "₹0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.amount))
	}
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		num  int
		want string
	}{
		{0, ""},
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{305, "Three Hundred Five"},
		{1070, "One Thousand Seventy"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberToWords(tt.num))
		})
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1070, "One Thousand Seventy Rupees Only"},
		{12.50, "Twelve Rupees and Fifty Paise Only"},
		{0.75, "Seventy Five Paise Only"},
		{1000.05, "One Thousand Rupees and Five Paise Only"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberToCurrencyWords(tt.amount))
		})
	}
}

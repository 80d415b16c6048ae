package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Wireless Mouse", want: "wireless-mouse"},
		{name: "mixed case", title: "USB-C Hub Pro", want: "usb-c-hub-pro"},
		{name: "punctuation collapsed", title: "Coffee!! & Tea, Set", want: "coffee-tea-set"},
		{name: "leading and trailing junk", title: "  --Gaming Keyboard-- ", want: "gaming-keyboard"},
		{name: "digits kept", title: "4K Monitor 27in", want: "4k-monitor-27in"},
		{name: "only junk", title: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Some Product Title"), Slugify("Some Product Title"))
}

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := map[string]string{
		"Education: 3000":                       "Education: 3000",
		"  Food & shelter ":                     "Food & shelter",
		"<b>Bold</b> move":                      "Bold move",
		"<script>alert(1)</script>Medical kits": "Medical kits",
		"bad \xff byte":                         "bad  byte",
		"<p></p>":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Text(in), in)
	}
}

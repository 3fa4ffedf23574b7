package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64([]byte(tt.data)))
			assert.Equal(t, tt.id, Sum64String(tt.data), "byte and string forms must agree")
		})
	}
}

func BenchmarkSum64(b *testing.B) {
	// one 31-mer of 2-bit symbols packed into 64-bit words, plus payload
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i * 37)
	}
	b.ResetTimer()
	for b.Loop() {
		Sum64(data)
	}
}

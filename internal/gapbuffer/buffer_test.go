package gapbuffer

import (
	"math/rand"
	"testing"
)

func TestInsertDelete(t *testing.T) {
	tests := []struct {
		name string
		ops  func(b *Buffer)
		want string
	}{
		{
			name: "insert at end",
			ops: func(b *Buffer) {
				b.InsertStr(0, []byte("hello"))
				b.InsertStr(5, []byte(" world"))
			},
			want: "hello world",
		},
		{
			name: "insert in middle",
			ops: func(b *Buffer) {
				b.InsertStr(0, []byte("helloworld"))
				b.InsertStr(5, []byte(" "))
			},
			want: "hello world",
		},
		{
			name: "delete range",
			ops: func(b *Buffer) {
				b.InsertStr(0, []byte("hello world"))
				b.Delete(5, 6)
			},
			want: "hello",
		},
		{
			name: "interleaved moves force gap relocation",
			ops: func(b *Buffer) {
				b.InsertStr(0, []byte("abcdef"))
				b.Insert(0, 'X')
				b.Insert(6, 'Y')
				b.Delete(3, 1)
			},
			want: "XabdeYf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(4)
			tt.ops(b)
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestByteFaithfulness is invariant 8.1.1: any sequence of insert/delete
// operations against the gap buffer must match a plain slice model.
func TestByteFaithfulness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := New(4)
	var model []byte

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0: // insert single byte
			pos := 0
			if len(model) > 0 {
				pos = rng.Intn(len(model) + 1)
			}
			c := byte('a' + rng.Intn(26))
			b.Insert(pos, c)
			model = append(model[:pos], append([]byte{c}, model[pos:]...)...)
		case 1: // insert string
			pos := 0
			if len(model) > 0 {
				pos = rng.Intn(len(model) + 1)
			}
			n := rng.Intn(5) + 1
			s := make([]byte, n)
			for j := range s {
				s[j] = byte('A' + rng.Intn(26))
			}
			b.InsertStr(pos, s)
			model = append(model[:pos], append(append([]byte{}, s...), model[pos:]...)...)
		case 2: // delete
			if len(model) == 0 {
				continue
			}
			pos := rng.Intn(len(model))
			n := rng.Intn(len(model)-pos) + 1
			b.Delete(pos, n)
			model = append(model[:pos], model[pos+n:]...)
		}
		if b.Len() != len(model) {
			t.Fatalf("len mismatch at step %d: got %d, want %d", i, b.Len(), len(model))
		}
	}
	if got := b.String(); got != string(model) {
		t.Fatalf("final content mismatch:\ngot  %q\nwant %q", got, string(model))
	}
}

func TestUtf8Navigation(t *testing.T) {
	b := NewFromBytes([]byte("aé中\U0001F600z")) // a, é, 中, 😀, z
	positions := []int{}
	for i := 0; i <= b.Len(); {
		positions = append(positions, i)
		if i == b.Len() {
			break
		}
		i = b.Utf8Next(i)
	}
	// walk backwards and confirm Utf8Prev(Utf8Next(i)) == i for boundaries
	for k := len(positions) - 1; k > 0; k-- {
		next := positions[k]
		prev := b.Utf8Prev(next)
		if prev != positions[k-1] {
			t.Errorf("Utf8Prev(%d) = %d, want %d", next, prev, positions[k-1])
		}
	}
}

func TestUtf8At(t *testing.T) {
	b := NewFromBytes([]byte("x中y"))
	r, n := b.Utf8At(1)
	if r != '中' || n != 3 {
		t.Errorf("Utf8At(1) = (%q, %d), want (%q, 3)", r, n, '中')
	}
}

package md5mini

import (
	"fmt"
	"strings"
	"testing"
)

// *任意切分点的增量更新都要和一把算完的结果一致,包括空前缀,空后缀和块中间的切分
func TestIncrementalEquivalence(t *testing.T) {
	msg := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 4) //*180字节,横跨两个块
	want := New().FinalizeString(msg).Hex()

	for split := 0; split <= len(msg); split++ {
		h := New()
		h.UpdateString(msg[:split])
		h.UpdateString(msg[split:])
		if got := h.Finalize(nil).Hex(); got != want {
			t.Fatalf("split %d: %s, want %s", split, got, want)
		}
	}
}

// *多段小块追加,每段都不满一个块
func TestManySmallUpdates(t *testing.T) {
	msg := strings.Repeat("a", 200)
	want := New().FinalizeString(msg).Hex()

	h := New()
	for i := 0; i < 200; i++ {
		h.Update([]byte{'a'})
	}
	if got := h.Finalize(nil).Hex(); got != want {
		t.Errorf("byte-at-a-time = %s, want %s", got, want)
	}
}

// *Finalize 的尾部参数等价于先 Update 再 Finalize
func TestFinalizeTail(t *testing.T) {
	want := New().FinalizeString("hello world").Hex()

	got := New().UpdateString("hello ").FinalizeString("world").Hex()
	if got != want {
		t.Errorf("finalize with tail = %s, want %s", got, want)
	}
}

// *Reset 之后实例和新建的没有区别,之前算过什么都不影响结果
func TestResetIdempotent(t *testing.T) {
	want := New().FinalizeString("abc").Hex()

	h := New()
	h.UpdateString("some unrelated garbage data")
	h.Finalize(nil)
	h.Reset()

	if got := h.FinalizeString("abc").Hex(); got != want {
		t.Errorf("after reset = %s, want %s", got, want)
	}
}

// *Finalize 是一次性的,不 Reset 就再用必须直接panic而不是吐出错误摘要
func TestUseAfterFinalize(t *testing.T) {
	fmt.Println("=== Testing use after finalize ===")
	tests := []struct {
		name string
		op   func(h *Hasher)
	}{
		{"update", func(h *Hasher) { h.Update([]byte("x")) }},
		{"updateString", func(h *Hasher) { h.UpdateString("x") }},
		{"finalize", func(h *Hasher) { h.Finalize(nil) }},
		{"finalizeString", func(h *Hasher) { h.FinalizeString("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			h.Finalize(nil)
			defer func() {
				if recover() == nil {
					t.Errorf("%s after finalize did not panic", tt.name)
				}
			}()
			tt.op(h)
		})
	}
}

// *克隆体和本体互不影响,各自收尾各得各的摘要
func TestClone(t *testing.T) {
	h := New().UpdateString("hello ")
	c := h.Clone()

	got1 := h.FinalizeString("world").Hex()
	got2 := c.FinalizeString("gopher").Hex()

	if want := New().FinalizeString("hello world").Hex(); got1 != want {
		t.Errorf("original = %s, want %s", got1, want)
	}
	if want := New().FinalizeString("hello gopher").Hex(); got2 != want {
		t.Errorf("clone = %s, want %s", got2, want)
	}
}

func TestSumHelpers(t *testing.T) {
	digest := Sum([]byte("abc"))
	if got := fmt.Sprintf("%x", digest); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("Sum(abc) = %s", got)
	}
	if got := SumString("abc"); got != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("SumString(abc) = %s", got)
	}
}

// *链式调用
func TestChaining(t *testing.T) {
	got := New().UpdateString("a").UpdateString("b").UpdateString("c").Finalize(nil).Hex()
	if want := New().FinalizeString("abc").Hex(); got != want {
		t.Errorf("chained = %s, want %s", got, want)
	}
}

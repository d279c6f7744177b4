package md5mini

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// *RFC 1321 附录的标准测试向量加上常见的参考输入
func TestVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"a", "0cc175b9c0f1b6a831c399e269772661"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
		{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
		{"12345678901234567890123456789012345678901234567890123456789012345678901234567890", "57edf4a22be3c955ac49da2e2107b67a"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}

	for _, tt := range tests {
		got := New().FinalizeString(tt.in).Hex()
		if got != tt.want {
			t.Errorf("md5(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

// *56字节处是填充边界:0x80 之后还要留8字节放长度,
// *55字节的输入填充成1个块,56字节就要溢出到第2个块
func TestPaddingBoundaries(t *testing.T) {
	tests := []struct {
		n          int
		want       string
		wantBlocks int //*finalize 之后总共压缩过的块数
	}{
		{0, "d41d8cd98f00b204e9800998ecf8427e", 1},
		{55, "ef1772b6dff9a122358552954ad0df65", 1},
		{56, "3b0c8ac703f828b04c6c197006d17218", 2},
		{63, "b06521f39153d618550606be297466d5", 2},
		{64, "014842d480b571495a4a0363793f7367", 2},
		{65, "c743a45e0d2e6a95cb859adae0248435", 2},
		{120, "5f61c0ccad4cac44c75ff505e1f1e537", 3}, //*末块残余56字节,长度后缀放不下,再溢出一块
	}

	for _, tt := range tests {
		in := strings.Repeat("a", tt.n)

		//*从计数器读块数,整条输入只在 finalize 时一把算完
		before := testutil.ToFloat64(blocksProcessed)
		got := New().FinalizeString(in).Hex()
		blocks := int(testutil.ToFloat64(blocksProcessed) - before)

		if got != tt.want {
			t.Errorf("md5(a*%d) = %s, want %s", tt.n, got, tt.want)
		}
		if blocks != tt.wantBlocks {
			t.Errorf("len %d: processed %d blocks, want %d", tt.n, blocks, tt.wantBlocks)
		}
	}
}

// *非 ASCII 输入走 UTF-8 编码后逐字节打包的路径
func TestUTF8Input(t *testing.T) {
	got := New().FinalizeString("你好, world").Hex()
	want := "1aadc5e8d8338e68bd59d48d8ecc170c"
	if got != want {
		t.Errorf("md5(utf8) = %s, want %s", got, want)
	}
}

// *摘要恒为16字节,与输入长度无关
func TestDigestSize(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1000} {
		out := New().FinalizeString(strings.Repeat("x", n))
		if out.SigBytes != Size {
			t.Errorf("len %d: digest is %d bytes, want %d", n, out.SigBytes, Size)
		}
		if len(out.Bytes()) != Size {
			t.Errorf("len %d: digest bytes length %d, want %d", n, len(out.Bytes()), Size)
		}
	}
}

func TestProcessBlockPrecondition(t *testing.T) {
	m := NewMD5()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a short block but got none")
		}
	}()
	m.ProcessBlock(make([]uint32, 8), 0)
}

func TestProcessBlockAlignment(t *testing.T) {
	m := NewMD5()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for an unaligned offset but got none")
		}
	}()
	m.ProcessBlock(make([]uint32, 32), 8)
}

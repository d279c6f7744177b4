package md5mini

import (
	"encoding/base64"
	"encoding/hex"
)

// *WordArray 是核心使用的字序列容器
// *内部以大端方式把字节打包进32位字:字节i存放在字i>>2中,位移量为24-8*(i%4)
// *SigBytes 记录有效字节数,最后一个字可能只填充了一部分,
// *所以 SigBytes 可以小于 4*len(Words)
type WordArray struct {
	Words    []uint32 //*32位字序列
	SigBytes int      //*有效字节数,0 <= SigBytes <= 4*len(Words)
}

// *用给定的字序列和有效字节数构造 WordArray
// *sigBytes 传入负数时按满容量 4*len(words) 处理
func NewWordArray(words []uint32, sigBytes int) *WordArray {
	if sigBytes < 0 {
		sigBytes = len(words) * 4
	}
	return &WordArray{Words: words, SigBytes: sigBytes}
}

// *把原始字节序列按大端打包成 WordArray
// *这是文本路径和二进制路径共用的打包步骤
func BytesToWords(p []byte) *WordArray {
	words := make([]uint32, (len(p)+3)/4)
	for i, b := range p {
		words[i>>2] |= uint32(b) << (24 - 8*(i%4))
	}
	return &WordArray{Words: words, SigBytes: len(p)}
}

// *把字符串先编码成 UTF-8 字节,再按 Latin-1 方式逐字节打包
// *go 的 string 本身就是 UTF-8 字节序列,所以直接转 []byte 即可
// *这条两段式路径是刻意保留的历史行为,下游摘要值依赖这个确切的位布局
func StringToWords(s string) *WordArray {
	return BytesToWords([]byte(s))
}

// *按大端从字序列解出 SigBytes 个字节
func (w *WordArray) Bytes() []byte {
	p := make([]byte, w.SigBytes)
	for i := 0; i < w.SigBytes; i++ {
		p[i] = byte(w.Words[i>>2] >> (24 - 8*(i%4)))
	}
	return p
}

// *十六进制小写编码,摘要展示用
func (w *WordArray) Hex() string {
	return hex.EncodeToString(w.Bytes())
}

// *base64 编码
func (w *WordArray) Base64() string {
	return base64.StdEncoding.EncodeToString(w.Bytes())
}

// *把 other 拼接到 w 的末尾,精确地扩展 SigBytes
// *当 w 的 SigBytes 不是4的倍数时,最后一个字只填充了一部分,
// *需要把 other 的前导字节逐个合并进这个半满的字里
func (w *WordArray) Concat(other *WordArray) *WordArray {
	w.Clamp()

	if w.SigBytes%4 != 0 {
		//*逐字节合并
		for i := 0; i < other.SigBytes; i++ {
			b := (other.Words[i>>2] >> (24 - 8*(i%4))) & 0xff
			pos := w.SigBytes + i
			for pos>>2 >= len(w.Words) {
				w.Words = append(w.Words, 0)
			}
			w.Words[pos>>2] |= b << (24 - 8*(pos%4))
		}
	} else {
		//*对齐的情况下整字复制
		for i := 0; i < other.SigBytes; i += 4 {
			w.Words = append(w.Words, other.Words[i>>2])
		}
	}

	w.SigBytes += other.SigBytes
	return w
}

// *把字序列收紧到正好覆盖 SigBytes 的长度
// *超出有效字节的位会被清零,避免半满字里残留的脏位参与后续合并
func (w *WordArray) Clamp() {
	full := w.SigBytes >> 2
	if w.SigBytes%4 != 0 {
		if full < len(w.Words) {
			w.Words[full] &= 0xffffffff << (32 - 8*(w.SigBytes%4))
			w.Words = w.Words[:full+1]
		}
	} else if full < len(w.Words) {
		w.Words = w.Words[:full]
	}
}

// *从头部移除 n 个字并返回它们的拷贝
// *返回值是独立的切片,不会和留在 w 里的数据产生别名,
// *调用方持有的已消费块不会被下一次 append 改写
func (w *WordArray) Splice(n int) []uint32 {
	if n > len(w.Words) {
		n = len(w.Words)
	}
	removed := make([]uint32, n)
	copy(removed, w.Words[:n])
	w.Words = append(w.Words[:0], w.Words[n:]...)
	return removed
}

// *深拷贝
func (w *WordArray) Clone() *WordArray {
	words := make([]uint32, len(w.Words))
	copy(words, w.Words)
	return &WordArray{Words: words, SigBytes: w.SigBytes}
}

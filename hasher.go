package md5mini

// *Hasher 是面向调用方的增量散列门面,把块缓冲和 MD5 变换装配在一起
// *单个实例独占自己的缓冲和散列状态,跨协程共享需要调用方自己加锁,
// *需要并行散列就各开各的实例
type Hasher struct {
	buf       *BlockBuffer
	md5       *MD5
	finalized bool
}

// *新建一个可立即使用的散列器
func New() *Hasher {
	h := &Hasher{
		buf: NewBlockBuffer(),
		md5: NewMD5(),
	}
	return h
}

// *把缓冲和散列状态一起清零,实例回到刚构造的样子
// *Finalize 过的实例必须先 Reset 才能继续使用
func (h *Hasher) Reset() *Hasher {
	h.buf.Reset()
	h.md5.Reset()
	h.finalized = false
	return h
}

// *追加一段字节并立刻消化攒够的整块,可链式调用,不限次数
// *这里不带 flush,残余的不满一块的数据留在缓冲里等下一轮
func (h *Hasher) Update(p []byte) *Hasher {
	if h.finalized {
		panic("md5mini: update after finalize, reset the hasher first")
	}
	h.buf.AppendBytes(p)
	h.buf.Process(false, h.md5)
	return h
}

// *Update 的文本版本,输入先按 UTF-8 编码成字节
func (h *Hasher) UpdateString(s string) *Hasher {
	if h.finalized {
		panic("md5mini: update after finalize, reset the hasher first")
	}
	h.buf.AppendString(s)
	h.buf.Process(false, h.md5)
	return h
}

// *收尾并返回16字节摘要,tail 不为空时先做最后一次追加
// *这是一次性操作:执行后实例作废,再调 Update 或 Finalize 都会panic
func (h *Hasher) Finalize(tail []byte) *WordArray {
	if h.finalized {
		panic("md5mini: finalize called twice without reset")
	}
	if len(tail) > 0 {
		h.buf.AppendBytes(tail)
	}
	h.finalized = true
	return h.md5.Finalize(h.buf)
}

// *Finalize 的文本版本
func (h *Hasher) FinalizeString(tail string) *WordArray {
	if h.finalized {
		panic("md5mini: finalize called twice without reset")
	}
	if tail != "" {
		h.buf.AppendString(tail)
	}
	h.finalized = true
	return h.md5.Finalize(h.buf)
}

// *复制出一个状态完全相同的独立散列器
// *拷贝不和原实例共享任何可变数据,两边可以各走各的
func (h *Hasher) Clone() *Hasher {
	return &Hasher{
		buf: &BlockBuffer{
			data:       h.buf.data.Clone(),
			totalBytes: h.buf.totalBytes,
		},
		md5:       &MD5{hash: h.md5.hash},
		finalized: h.finalized,
	}
}

// *一次性算出 data 的 MD5 摘要
func Sum(data []byte) [Size]byte {
	out := New().Finalize(data)
	var digest [Size]byte
	copy(digest[:], out.Bytes())
	return digest
}

// *一次性算出字符串的 MD5 摘要的十六进制表示
func SumString(s string) string {
	return New().FinalizeString(s).Hex()
}
